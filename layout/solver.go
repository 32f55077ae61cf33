// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"errors"

	"github.com/gogpu/uikit"
)

// ErrSolve is returned (wrapped) when the constraint solver cannot produce
// a layout for the given style tree. A solve failure is fatal for the
// whole pass: no partial layout is ever written back.
var ErrSolve = errors.New("layout: solve failed")

// Node is one entry in the style tree handed to a Solver. The tree
// mirrors the widget tree's shape; node identity is the pointer itself.
// After a successful solve, Rect holds the node's rectangle relative to
// its parent's content box.
type Node struct {
	Style    Style
	Children []*Node

	// Rect is the solver output: position relative to the parent node,
	// plus the solved size.
	Rect uikit.Rect
}

// AddChild appends a child node and returns it, for fluent tree building
// in tests and bridges.
func (n *Node) AddChild(style Style) *Node {
	c := &Node{Style: style}
	n.Children = append(n.Children, c)
	return c
}

// Solver computes rectangles for a style tree within a target size.
//
// Implementations must write exactly one Rect per input node and either
// succeed for the whole tree or return an error wrapping ErrSolve without
// modifying any node.
type Solver interface {
	Solve(root *Node, size uikit.Size) error
}
