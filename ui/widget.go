// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/layout"
)

// invalidationSignal is the per-UI relayout flag plus a generation
// counter. Widgets hold a pointer to the signal together with the
// generation they were attached under; bumping the generation severs
// every widget bound to it in one step, replacing weak back-references
// with an explicit liveness check.
type invalidationSignal struct {
	flag atomic.Bool
	gen  atomic.Uint64
}

// Widget is a shared handle to one node of the retained UI tree. Copying
// a Widget yields another reference to the same node; the node lives as
// long as any handle does.
//
// The widget graph reachable from a UI's root must be a tree. Cycles are
// not detected: traversal over a cyclic graph will not terminate, and a
// widget added under itself will self-deadlock on its lock. This is a
// documented precondition, not a recoverable condition.
//
// A zero Widget is invalid; construct with NewWidget.
type Widget struct {
	state *widgetState
}

// widgetState is the node's shared mutable state. Every access goes
// through mu; each node's lock is independent, so contention is per-node.
type widgetState struct {
	mu sync.RWMutex

	// element is the node's content, owned exclusively by this widget.
	element Element

	// children are laid out inside this widget by flexbox rules; order is
	// both layout- and render-significant.
	children []Widget

	// backgrounds render on layers strictly before this widget's own
	// content, at the same solved rectangle. Useful for fills and
	// highlights.
	backgrounds []Element

	// style is the declared layout constraint set; the element's
	// intrinsic size hint overrides Width/Height per axis when not auto.
	style layout.Style

	// rect is the cached result of the last layout solve, parent-relative.
	// hasRect is false before the first solve.
	rect    uikit.Rect
	hasRect bool

	// sig plus gen bind this widget to its owning UI's invalidation
	// signal. sig == nil or a stale gen means detached: ForceLayout
	// becomes a silent no-op.
	sig *invalidationSignal
	gen uint64

	// hovered and hoverPos track the pointer: hoverPos is the last
	// pointer position in local coordinates, valid only while hovered.
	hovered  bool
	hoverPos uikit.Point
}

// NewWidget creates a widget node with the given content element,
// children, background layers and declared style. A nil element behaves
// as Empty.
func NewWidget(element Element, children []Widget, backgrounds []Element, style layout.Style) Widget {
	if element == nil {
		element = Empty{}
	}
	return Widget{state: &widgetState{
		element:     element,
		children:    children,
		backgrounds: backgrounds,
		style:       style,
	}}
}

// ForceLayout marks the owning UI's layout as stale. Every mutation that
// can change the widget's intrinsic size or the tree's shape must call
// it. On a widget that is detached, or whose UI has been closed, this is
// a silent no-op.
func (w Widget) ForceLayout() {
	st := w.state
	st.mu.RLock()
	sig, gen := st.sig, st.gen
	st.mu.RUnlock()

	if sig != nil && sig.gen.Load() == gen {
		sig.flag.Store(true)
	}
}

// AddChild appends a child widget. The child subtree is bound to this
// widget's invalidation signal so that ForceLayout calls anywhere below
// reach the right UI, and the tree is marked for relayout.
func (w Widget) AddChild(child Widget) {
	st := w.state
	st.mu.Lock()
	child.rebind(st.sig, st.gen)
	st.children = append(st.children, child)
	st.mu.Unlock()

	w.ForceLayout()
}

// ClearChildren removes all children and marks the tree for relayout.
// The removed subtrees keep their binding; their own ForceLayout calls
// still reach the UI until it is closed.
func (w Widget) ClearChildren() {
	st := w.state
	st.mu.Lock()
	st.children = nil
	st.mu.Unlock()

	w.ForceLayout()
}

// SetElement replaces the widget's content element and marks the tree
// for relayout. A nil element behaves as Empty.
func (w Widget) SetElement(element Element) {
	if element == nil {
		element = Empty{}
	}
	st := w.state
	st.mu.Lock()
	st.element = element
	st.mu.Unlock()

	w.ForceLayout()
}

// SetStyle replaces the widget's declared style and marks the tree for
// relayout.
func (w Widget) SetStyle(style layout.Style) {
	st := w.state
	st.mu.Lock()
	st.style = style
	st.mu.Unlock()

	w.ForceLayout()
}

// Layout returns the cached rectangle from the last solve, and whether
// one exists. The rectangle is relative to the parent widget.
func (w Widget) Layout() (uikit.Rect, bool) {
	st := w.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.rect, st.hasRect
}

// rebind points this widget and its whole subtree at the given
// invalidation signal and generation.
func (w Widget) rebind(sig *invalidationSignal, gen uint64) {
	st := w.state
	st.mu.Lock()
	children := st.children
	st.sig, st.gen = sig, gen
	st.mu.Unlock()

	for _, c := range children {
		c.rebind(sig, gen)
	}
}

// setRect caches a solved rectangle on the widget.
func (w Widget) setRect(rect uikit.Rect) {
	st := w.state
	st.mu.Lock()
	st.rect, st.hasRect = rect, true
	st.mu.Unlock()
}

// styleNode is one entry of the style snapshot handed to the layout
// bridge: the widget it came from, its effective style, and children in
// declaration order.
type styleNode struct {
	widget   Widget
	style    layout.Style
	children []*styleNode
}

// styleTree snapshots the widget subtree's effective styles. Each node
// is read under its own lock; a mutation racing the snapshot is observed
// on the next invalidation cycle, never mid-pass.
func (w Widget) styleTree() *styleNode {
	st := w.state
	st.mu.RLock()
	style := st.style
	hint := st.element.Size()
	children := append([]Widget(nil), st.children...)
	st.mu.RUnlock()

	if !hint.Width.IsAuto() {
		style.Width = hint.Width
	}
	if !hint.Height.IsAuto() {
		style.Height = hint.Height
	}

	n := &styleNode{widget: w, style: style}
	for _, c := range children {
		n.children = append(n.children, c.styleTree())
	}
	return n
}
