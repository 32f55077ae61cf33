// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/layout"
	"github.com/gogpu/uikit/render"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// ButtonState is the transition reported for a pointer button.
type ButtonState uint8

const (
	ButtonPressed ButtonState = iota
	ButtonReleased
)

// Element is the content of a widget: anything that can report an
// intrinsic size and describe itself as a Renderable once its rectangle
// is solved. Elements are owned exclusively by their widget and are
// called with the widget's lock held, so an element must not reach back
// into the widget tree from its methods (ForceLayout is fine: it only
// touches the UI's invalidation flag).
//
// Pointer capabilities are optional and discovered by interface
// assertion; an element that implements neither PointerHandler nor
// HoverHandler simply never hears about the pointer.
type Element interface {
	// Size returns the element's intrinsic size hint. It is merged into
	// the widget's declared style per axis: a non-auto hint overrides the
	// style's dimension for that axis.
	Size() layout.SizeHint

	// Render describes the element within its solved rectangle. The
	// rectangle is in the same coordinate space the backend draws in
	// (accumulated parent offsets already applied).
	Render(rect uikit.Rect) render.Renderable
}

// PointerHandler is implemented by elements that accept button events.
type PointerHandler interface {
	// ProcessPointerButton reports whether the event was consumed.
	// Consumed events stop propagating; see UI.MouseInput.
	ProcessPointerButton(button Button, state ButtonState) bool
}

// HoverHandler is implemented by elements that track the pointer.
// PointerMove is called immediately after PointerEnter, and positions are
// local to the widget's rectangle.
type HoverHandler interface {
	PointerEnter()
	PointerMove(pos uikit.Point)
	PointerLeave()
}

// Empty is the identity Element: auto size, renders Nothing, never
// consumes input. Useful for pure container widgets.
type Empty struct{}

// Size returns the auto size hint.
func (Empty) Size() layout.SizeHint { return layout.SizeHint{} }

// Render returns Nothing.
func (Empty) Render(uikit.Rect) render.Renderable { return render.Nothing }
