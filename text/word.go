// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package text carries shaped text values through the composition pipeline.
//
// Shaping itself is external: the host application shapes its strings with
// go-text/typesetting (or any shaper producing a shaping.Output) and hands
// the result to uikit as a Word. The composition tree and the batching
// engine treat Words as opaque drawable payloads; only their pixel metrics
// are inspected, for intrinsic sizing.
package text

import (
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Word is a shaped run of glyphs with uniform style, ready for submission
// to a rendering backend. A Word is immutable after creation and may be
// reused across frames.
type Word struct {
	// Text is the source string the run was shaped from.
	Text string

	// Run is the shaper output: positioned glyphs, advances and metrics
	// in 26.6 fixed point.
	Run shaping.Output
}

// NewWord pairs a source string with its shaper output.
func NewWord(text string, run shaping.Output) Word {
	return Word{Text: text, Run: run}
}

// Width returns the horizontal extent of the word in pixels.
func (w Word) Width() float32 {
	return fromFixed(w.Run.Advance)
}

// Height returns the line height of the word in pixels: ascent plus
// descent of the shaped run's line bounds. Descent is negative in
// shaping.Bounds, so the two are subtracted.
func (w Word) Height() float32 {
	return fromFixed(w.Run.LineBounds.Ascent - w.Run.LineBounds.Descent)
}

// Empty reports whether the word contains no glyphs.
func (w Word) Empty() bool {
	return len(w.Run.Glyphs) == 0
}

// fromFixed converts a 26.6 fixed-point value to float32 pixels.
func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
