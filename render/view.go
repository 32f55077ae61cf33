// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/uikit"

// View is the camera/projection context for a frame. The core never
// interprets it: the batcher passes the view through unchanged with every
// submission, and the backend applies it when encoding draw calls.
type View struct {
	// Viewport is the target region rendered into, in pixels.
	Viewport uikit.Rect

	// Origin is the world coordinate mapped to the viewport's top-left
	// corner.
	Origin uikit.Point

	// Zoom scales world units to pixels. 1 means one world unit per pixel.
	Zoom float32
}

// NewView creates a view covering the given viewport at zoom 1.
func NewView(viewport uikit.Rect) *View {
	return &View{Viewport: viewport, Zoom: 1}
}

// CenterOn adjusts the view origin so that the world point (x, y) sits at
// the center of the viewport. The resulting origin depends on Zoom, so if
// the view must stay centered this is called after updating Zoom.
func (v *View) CenterOn(x, y float32) {
	v.Origin.X = x - v.Viewport.W/(2*v.Zoom)
	v.Origin.Y = y - v.Viewport.H/(2*v.Zoom)
}

// ProjectionMatrix returns a column-major 4x4 matrix mapping world
// coordinates (origin top-left, y down) to clip space for the viewport.
func (v *View) ProjectionMatrix() [16]float32 {
	sx, sy := v.Viewport.W, v.Viewport.H
	z2 := v.Zoom * 2
	return [16]float32{
		z2 / sx, 0, 0, 0,
		0, -z2 / sy, 0, 0,
		0, 0, 1, 0,
		-(sx + v.Origin.X*z2) / sx, (sy + v.Origin.Y*z2) / sy, 0, 1,
	}
}
