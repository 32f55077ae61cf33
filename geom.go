// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uikit

// Point represents a 2D point or vector.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents a 2D extent.
type Size struct {
	W, H float32
}

// Sz is a convenience function to create a Size.
func Sz(w, h float32) Size {
	return Size{W: w, H: h}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float32
}

// RectFromPosSize creates a Rect from a position and size.
func RectFromPosSize(pos Point, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// Pos returns the top-left corner of the rectangle.
func (r Rect) Pos() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, W: r.W, H: r.H}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the right and bottom edges are considered inside, matching
// pointer hit semantics where a rect {0,0,10,10} contains (10,10).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
