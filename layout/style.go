// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout defines the style vocabulary the widget tree speaks and
// the contract of the external constraint solver that turns a style tree
// into solved rectangles.
//
// uikit does not prescribe a layout algorithm. The ui package builds a
// tree of Nodes mirroring the widget tree, hands it to a Solver together
// with the target size, and reads one parent-relative Rect back per node.
// FlexSolver, backed by the kjk/flex port of Yoga, is the default.
package layout

// Unit discriminates how a Dimension is interpreted.
type Unit uint8

const (
	// UnitAuto lets the solver pick the size from content and flex rules.
	UnitAuto Unit = iota

	// UnitPoints is an absolute size in pixels.
	UnitPoints

	// UnitPercent is a fraction of the parent dimension, in [0, 100].
	UnitPercent
)

// Dimension is a single size hint: auto, absolute points or a percentage
// of the parent. The zero value is auto.
type Dimension struct {
	unit  Unit
	value float32
}

// Auto returns the auto dimension.
func Auto() Dimension { return Dimension{} }

// Points returns an absolute dimension in pixels.
func Points(v float32) Dimension { return Dimension{unit: UnitPoints, value: v} }

// Percent returns a dimension as a percentage of the parent, in [0, 100].
func Percent(v float32) Dimension { return Dimension{unit: UnitPercent, value: v} }

// Unit returns how the dimension is interpreted.
func (d Dimension) Unit() Unit { return d.unit }

// Value returns the numeric value; meaningless for auto.
func (d Dimension) Value() float32 { return d.value }

// IsAuto reports whether the dimension is auto.
func (d Dimension) IsAuto() bool { return d.unit == UnitAuto }

// SizeHint is a widget's or element's intrinsic size: one Dimension per
// axis. The zero value is auto in both axes.
type SizeHint struct {
	Width, Height Dimension
}

// FlexDirection sets the main axis of a flex container.
type FlexDirection uint8

const (
	Row FlexDirection = iota
	Column
	RowReverse
	ColumnReverse
)

// Justify distributes children along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align positions children on the cross axis.
type Align uint8

const (
	AlignStretch Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Edges is a per-side pixel inset, used for margin and padding.
type Edges struct {
	Left, Top, Right, Bottom float32
}

// EdgesAll returns an Edges with the same inset on every side.
func EdgesAll(v float32) Edges {
	return Edges{Left: v, Top: v, Right: v, Bottom: v}
}

// Style is the set of layout constraints forwarded to the solver for one
// node: the size hints plus the flexbox properties. The zero value is a
// row container with auto size, no growth and no insets.
type Style struct {
	// Width and Height are the node's size hints. For widgets these are
	// overridden per axis by the element's intrinsic SizeHint unless that
	// hint is auto.
	Width, Height Dimension

	// Direction is the main axis along which children are laid out.
	Direction FlexDirection

	// Justify distributes children along the main axis.
	Justify Justify

	// AlignItems positions children on the cross axis.
	AlignItems Align

	// Grow is the flex-grow factor: the node's share of leftover main-axis
	// space.
	Grow float32

	// Shrink is the flex-shrink factor.
	Shrink float32

	// Basis is the initial main-axis size before growing or shrinking.
	Basis Dimension

	// Margin is the inset outside the node; Padding the inset inside it.
	Margin, Padding Edges
}
