// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/render"
)

// renderInfo produces the renderable for the widget subtree. offset is
// the parent's solved top-left in the coordinate space of the tree root,
// so each widget's parent-relative rectangle translates to absolute
// coordinates on the way down. A widget with no solved rectangle
// contributes Nothing.
//
// debugTex, when non-nil, adds a one-pixel outline around every laid-out
// widget on top of its content.
func (w Widget) renderInfo(offset uikit.Point, debugTex render.TextureSource) render.Renderable {
	st := w.state
	st.mu.RLock()
	rect, hasRect := st.rect, st.hasRect
	element := st.element
	children := append([]Widget(nil), st.children...)
	backgrounds := append([]Element(nil), st.backgrounds...)
	st.mu.RUnlock()

	if !hasRect {
		return render.Nothing
	}
	rect = rect.Translate(offset)

	parts := make([]render.Renderable, 0, len(children)+2)
	parts = append(parts, element.Render(rect))
	for _, c := range children {
		parts = append(parts, c.renderInfo(rect.Pos(), debugTex))
	}
	if debugTex != nil {
		parts = append(parts, debugOutline(debugTex, rect))
	}
	content := render.Adjacent(parts...)

	if len(backgrounds) == 0 {
		return content
	}
	layers := make([]render.Renderable, 0, len(backgrounds)+1)
	for _, b := range backgrounds {
		layers = append(layers, b.Render(rect))
	}
	layers = append(layers, content)
	return render.Layered(layers...)
}

// debugOutline builds a one-pixel white frame around rect.
func debugOutline(src render.TextureSource, rect uikit.Rect) render.Renderable {
	uv := uikit.Rect{}
	top := uikit.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: 1}
	bottom := uikit.Rect{X: rect.X, Y: rect.Y + rect.H - 1, W: rect.W, H: 1}
	left := uikit.Rect{X: rect.X, Y: rect.Y, W: 1, H: rect.H}
	right := uikit.Rect{X: rect.X + rect.W - 1, Y: rect.Y, W: 1, H: rect.H}
	return render.Image(src,
		render.QuadRect(top, render.White, uv),
		render.QuadRect(bottom, render.White, uv),
		render.QuadRect(left, render.White, uv),
		render.QuadRect(right, render.White, uv),
	)
}
