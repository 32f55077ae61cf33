// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/layout"
	"github.com/gogpu/uikit/render"
	"github.com/gogpu/uikit/text"
)

// Fill is an element that covers its rectangle with a single tinted quad.
// The typical background layer: give a widget a Fill background and its
// content draws strictly on top of the colored area.
type Fill struct {
	// Source is the texture sampled by the quad, usually a 1x1 white
	// texture tinted via Color.
	Source render.TextureSource

	// Color tints the quad. The zero value is fully transparent; use
	// render.White for an untinted fill.
	Color render.Color
}

// Size returns the auto size hint: a fill adapts to whatever rectangle
// the layout assigns.
func (f Fill) Size() layout.SizeHint { return layout.SizeHint{} }

// Render emits one quad covering the rectangle.
func (f Fill) Render(rect uikit.Rect) render.Renderable {
	if f.Source == nil {
		return render.Nothing
	}
	return render.Image(f.Source, render.QuadRect(rect, f.Color, render.UVFull))
}

// Label is an element displaying one shaped word. The host shapes the
// string (see the text package) and the label sizes itself to the run's
// pixel metrics.
type Label struct {
	Word text.Word
}

// Size returns the word's pixel metrics as a fixed hint.
func (l Label) Size() layout.SizeHint {
	return layout.SizeHint{
		Width:  layout.Points(l.Word.Width()),
		Height: layout.Points(l.Word.Height()),
	}
}

// Render places the word at the rectangle's origin.
func (l Label) Render(rect uikit.Rect) render.Renderable {
	if l.Word.Empty() {
		return render.Nothing
	}
	return render.Text(l.Word, rect.Pos())
}
