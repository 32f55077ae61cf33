// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"testing"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedOutput builds a minimal shaper output without running a shaper.
func shapedOutput(advance float32, ascent, descent float32, glyphs int) shaping.Output {
	return shaping.Output{
		Advance: fixed.Int26_6(advance * 64),
		Glyphs:  make([]shaping.Glyph, glyphs),
		LineBounds: shaping.Bounds{
			Ascent:  fixed.Int26_6(ascent * 64),
			Descent: fixed.Int26_6(descent * 64),
		},
	}
}

func TestWordMetrics(t *testing.T) {
	w := NewWord("hello", shapedOutput(42.5, 12, -4, 5))

	if got := w.Width(); got != 42.5 {
		t.Errorf("Width = %v, want 42.5", got)
	}
	// Height = ascent - descent = 12 - (-4) = 16.
	if got := w.Height(); got != 16 {
		t.Errorf("Height = %v, want 16", got)
	}
	if w.Empty() {
		t.Error("word with glyphs reported Empty")
	}
}

func TestWordEmpty(t *testing.T) {
	w := NewWord("", shaping.Output{})
	if !w.Empty() {
		t.Error("zero-value word should be Empty")
	}
	if w.Width() != 0 || w.Height() != 0 {
		t.Errorf("zero-value word metrics = %v x %v, want 0 x 0", w.Width(), w.Height())
	}
}
