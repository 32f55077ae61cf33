// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/gogpu/uikit"
	"github.com/kjk/flex"
)

// FlexSolver is the default Solver, bridging to the kjk/flex port of
// Facebook's Yoga flexbox engine. The solver is external to uikit: this
// type only translates the style tree into flex nodes, runs the
// calculation and reads the rectangles back.
//
// FlexSolver is stateless between Solve calls and safe to reuse, but not
// safe for concurrent use (the underlying flex config is shared).
type FlexSolver struct {
	config *flex.Config
}

// NewFlexSolver creates a FlexSolver with a default flex configuration.
func NewFlexSolver() *FlexSolver {
	return &FlexSolver{config: flex.NewConfig()}
}

// flexTree pairs a flex node with its children, mirroring the input tree
// so results can be read back without relying on flex child lookups.
type flexTree struct {
	node     *flex.Node
	children []*flexTree
}

// Solve implements Solver. The flex engine asserts on structurally
// invalid input rather than returning errors; those panics are converted
// into an error wrapping ErrSolve so a bad tree fails the pass instead of
// crashing the frame loop.
func (s *FlexSolver) Solve(root *Node, size uikit.Size) (err error) {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrSolve)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSolve, r)
		}
	}()

	ft := s.build(root)
	flex.CalculateLayout(ft.node, size.W, size.H, flex.DirectionLTR)
	readback(root, ft)
	return nil
}

// build translates one Node subtree into a flex node subtree.
func (s *FlexSolver) build(n *Node) *flexTree {
	fn := flex.NewNodeWithConfig(s.config)
	applyStyle(fn, n.Style)

	ft := &flexTree{node: fn}
	for i, c := range n.Children {
		cf := s.build(c)
		fn.InsertChild(cf.node, i)
		ft.children = append(ft.children, cf)
	}
	return ft
}

// readback copies solved rectangles into the input tree. Flex positions
// are relative to the parent node, which is exactly the contract of
// Node.Rect.
func readback(n *Node, ft *flexTree) {
	n.Rect = uikit.Rect{
		X: ft.node.LayoutGetLeft(),
		Y: ft.node.LayoutGetTop(),
		W: ft.node.LayoutGetWidth(),
		H: ft.node.LayoutGetHeight(),
	}
	for i, c := range n.Children {
		readback(c, ft.children[i])
	}
}

// applyStyle forwards a Style onto a flex node. Auto dimensions are left
// unset: auto is the flex default.
func applyStyle(fn *flex.Node, st Style) {
	setDimension(st.Width, fn.StyleSetWidth, fn.StyleSetWidthPercent)
	setDimension(st.Height, fn.StyleSetHeight, fn.StyleSetHeightPercent)
	setDimension(st.Basis, fn.StyleSetFlexBasis, fn.StyleSetFlexBasisPercent)

	fn.StyleSetFlexDirection(flexDirection(st.Direction))
	fn.StyleSetJustifyContent(flexJustify(st.Justify))
	fn.StyleSetAlignItems(flexAlign(st.AlignItems))
	fn.StyleSetFlexGrow(st.Grow)
	fn.StyleSetFlexShrink(st.Shrink)

	setEdges(st.Margin, fn.StyleSetMargin)
	setEdges(st.Padding, fn.StyleSetPadding)
}

func setDimension(d Dimension, points, percent func(float32)) {
	switch d.Unit() {
	case UnitPoints:
		points(d.Value())
	case UnitPercent:
		percent(d.Value())
	}
}

func setEdges(e Edges, set func(flex.Edge, float32)) {
	if e.Left != 0 {
		set(flex.EdgeLeft, e.Left)
	}
	if e.Top != 0 {
		set(flex.EdgeTop, e.Top)
	}
	if e.Right != 0 {
		set(flex.EdgeRight, e.Right)
	}
	if e.Bottom != 0 {
		set(flex.EdgeBottom, e.Bottom)
	}
}

func flexDirection(d FlexDirection) flex.FlexDirection {
	switch d {
	case Column:
		return flex.FlexDirectionColumn
	case RowReverse:
		return flex.FlexDirectionRowReverse
	case ColumnReverse:
		return flex.FlexDirectionColumnReverse
	default:
		return flex.FlexDirectionRow
	}
}

func flexJustify(j Justify) flex.Justify {
	switch j {
	case JustifyCenter:
		return flex.JustifyCenter
	case JustifyEnd:
		return flex.JustifyFlexEnd
	case JustifySpaceBetween:
		return flex.JustifySpaceBetween
	case JustifySpaceAround:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyFlexStart
	}
}

func flexAlign(a Align) flex.Align {
	switch a {
	case AlignStart:
		return flex.AlignFlexStart
	case AlignCenter:
		return flex.AlignCenter
	case AlignEnd:
		return flex.AlignFlexEnd
	default:
		return flex.AlignStretch
	}
}
