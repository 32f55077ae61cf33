// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/uikit"

// Color is a normalized RGBA color. Each channel is in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	Transparent = Color{}
)

// Vertex is one corner of a textured quad: a position in target
// coordinates, a tint color and a texture coordinate.
type Vertex struct {
	Position uikit.Point
	Color    Color
	UV       uikit.Point
}

// Quad is a quadrilateral of four vertices, wound top-left, top-right,
// bottom-right, bottom-left. Quads sharing a texture are batched into a
// single draw submission.
type Quad [4]Vertex

// QuadRect builds an axis-aligned quad covering r, tinted with color and
// sampling the texture sub-region uv (normalized coordinates).
func QuadRect(r uikit.Rect, color Color, uv uikit.Rect) Quad {
	return Quad{
		{Position: uikit.Pt(r.X, r.Y), Color: color, UV: uikit.Pt(uv.X, uv.Y)},
		{Position: uikit.Pt(r.X+r.W, r.Y), Color: color, UV: uikit.Pt(uv.X+uv.W, uv.Y)},
		{Position: uikit.Pt(r.X+r.W, r.Y+r.H), Color: color, UV: uikit.Pt(uv.X+uv.W, uv.Y+uv.H)},
		{Position: uikit.Pt(r.X, r.Y+r.H), Color: color, UV: uikit.Pt(uv.X, uv.Y+uv.H)},
	}
}

// UVFull is the texture sub-region covering the whole texture.
var UVFull = uikit.Rect{X: 0, Y: 0, W: 1, H: 1}
