// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/layout"
	"github.com/gogpu/uikit/render"
)

// UI owns a widget tree: it solves layout against the host's size,
// produces the tree's renderable, and routes pointer events. One UI per
// window or surface.
type UI struct {
	mu      sync.Mutex
	root    Widget
	size    uikit.Size
	sig     *invalidationSignal
	solver  layout.Solver
	debug   render.TextureSource
	pointer uikit.Point
}

// Option configures a UI.
type Option func(*UI)

// WithSolver replaces the default flexbox solver.
func WithSolver(s layout.Solver) Option {
	return func(u *UI) {
		if s != nil {
			u.solver = s
		}
	}
}

// WithDebugOverlay draws a one-pixel outline around every laid-out
// widget using the given texture. Intended for a plain white pixel.
func WithDebugOverlay(src render.TextureSource) Option {
	return func(u *UI) {
		u.debug = src
	}
}

// New creates a UI around the given root widget. The root subtree is
// bound to the UI's invalidation signal, and the first RenderInfo or
// MouseMove call performs the initial layout solve.
func New(root Widget, size uikit.Size, opts ...Option) *UI {
	u := &UI{
		root:   root,
		size:   size,
		sig:    &invalidationSignal{},
		solver: layout.NewFlexSolver(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.sig.flag.Store(true)
	root.rebind(u.sig, u.sig.gen.Load())
	return u
}

// Root returns the root widget.
func (u *UI) Root() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.root
}

// SetSize records a new host surface size and marks the layout stale.
func (u *UI) SetSize(size uikit.Size) {
	u.mu.Lock()
	u.size = size
	u.mu.Unlock()
	u.sig.flag.Store(true)
}

// Close severs every widget bound to this UI: their ForceLayout calls
// become no-ops, so retained widget handles cannot keep signalling a UI
// the host has discarded. The UI itself must not be used after Close.
func (u *UI) Close() {
	u.sig.gen.Add(1)
}

// RenderInfo solves layout if it is stale and returns the renderable
// for the whole tree, with every rectangle offset by the given origin.
func (u *UI) RenderInfo(offset uikit.Point) (render.Renderable, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.relayout(); err != nil {
		return render.Nothing, err
	}
	return u.root.renderInfo(offset, u.debug), nil
}

// MouseMove routes a pointer move through the tree, solving layout first
// if it is stale so hit testing sees current rectangles.
func (u *UI) MouseMove(pos uikit.Point) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.relayout(); err != nil {
		return err
	}
	u.pointer = pos
	u.root.processMouseMove(pos)
	return nil
}

// PointerPosition returns the last position passed to MouseMove.
func (u *UI) PointerPosition() uikit.Point {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.pointer
}

// MouseInput propagates a button event through the tree, parent before
// children, stopping at the first element that consumes it. It reports
// whether any element did. No layout pass runs here: button events bind
// to the hover state established by the preceding MouseMove.
func (u *UI) MouseInput(button Button, state ButtonState) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.root.processMouseInput(button, state)
}

// relayout runs a solve pass when the invalidation flag is set. The flag
// clears only on success; a failed solve leaves it set so the next frame
// retries.
func (u *UI) relayout() error {
	if !u.sig.flag.Load() {
		return nil
	}

	styles := u.root.styleTree()
	node := buildLayoutTree(styles)
	if err := u.solver.Solve(node, u.size); err != nil {
		uikit.Logger().Warn("ui: layout solve failed", slog.Any("error", err))
		return fmt.Errorf("ui: relayout: %w", err)
	}
	applyLayoutTree(styles, node)
	u.sig.flag.Store(false)
	return nil
}

// buildLayoutTree lowers a style snapshot into solver nodes, preserving
// child order so the two trees can be walked in lockstep afterwards.
func buildLayoutTree(sn *styleNode) *layout.Node {
	n := &layout.Node{Style: sn.style}
	for _, c := range sn.children {
		n.Children = append(n.Children, buildLayoutTree(c))
	}
	return n
}

// applyLayoutTree writes solved rectangles back onto the widgets.
func applyLayoutTree(sn *styleNode, n *layout.Node) {
	sn.widget.setRect(n.Rect)
	for i, c := range sn.children {
		applyLayoutTree(c, n.Children[i])
	}
}
