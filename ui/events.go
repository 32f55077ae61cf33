// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/uikit"
)

// processMouseMove walks the widget subtree delivering hover events.
// pos is the pointer position in the parent's coordinate space; each
// widget tests containment against its parent-relative rectangle and the
// element receives the position local to the widget. Children are
// visited with pos unchanged.
//
// There is no occlusion: every widget whose rectangle contains the
// pointer receives events, regardless of siblings drawn on top of it.
// Enter and move fire before the children are visited, leave fires
// after, so a subtree sees enter top-down and leave bottom-up.
func (w Widget) processMouseMove(pos uikit.Point) {
	st := w.state
	st.mu.Lock()
	defer st.mu.Unlock()

	inside := st.hasRect && st.rect.Contains(pos)
	local := pos.Sub(st.rect.Pos())
	wasHovered := st.hovered
	st.hovered = inside
	if inside {
		st.hoverPos = local
	}

	handler, _ := st.element.(HoverHandler)
	if handler != nil && inside {
		if !wasHovered {
			handler.PointerEnter()
		}
		handler.PointerMove(local)
	}
	for _, c := range st.children {
		c.processMouseMove(pos)
	}
	if handler != nil && wasHovered && !inside {
		handler.PointerLeave()
	}
}

// processMouseInput propagates a button event through the subtree. The
// widget's own element gets the event before its children, so a parent
// can shadow its subtree by consuming. Returns true once any handler
// consumes the event; remaining widgets are skipped. There is no
// containment test here: elements track their own hover state through
// HoverHandler and decide whether a press concerns them.
func (w Widget) processMouseInput(button Button, state ButtonState) bool {
	st := w.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if handler, ok := st.element.(PointerHandler); ok {
		if handler.ProcessPointerButton(button, state) {
			return true
		}
	}
	for _, c := range st.children {
		if c.processMouseInput(button, state) {
			return true
		}
	}
	return false
}
