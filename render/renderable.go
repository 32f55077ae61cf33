// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/text"
)

// Renderable is a per-frame declarative description of drawable content
// and its ordering constraints. A Renderable tree is built fresh every
// frame, handed to a Batcher, and never retained afterwards.
//
// The closed variant set is:
//
//   - Nothing: draws nothing
//   - Layered: strict sequential draw order across its items
//   - Adjacent: no ordering constraint among its items
//   - Text: one shaped word at an offset
//   - Image: textured quads sharing a single texture
//
// Nesting encodes ordering and nothing else: Layered is the only construct
// that creates a must-happen-before relationship. Everything else is
// order-free and may be merged or reordered by the batcher.
type Renderable interface {
	isRenderable()
}

// Nothing is the empty Renderable. It contributes no draw submissions and
// is eliminated when grouped under Adjacent or Layered.
var Nothing Renderable = nothing{}

type nothing struct{}

func (nothing) isRenderable() {}

// layered draws its items strictly in order: every item is fully flushed
// before the next one starts.
type layered struct {
	items []Renderable
}

func (layered) isRenderable() {}

// adjacent draws its items with no ordering constraint, allowing the
// batcher to merge compatible content across them.
type adjacent struct {
	items []Renderable
}

func (adjacent) isRenderable() {}

// textItem draws one shaped word at an offset via the text batch.
type textItem struct {
	word   text.Word
	offset uikit.Point
}

func (textItem) isRenderable() {}

// imageItem draws one or more quads sampling a single texture.
type imageItem struct {
	texture TextureSource
	quads   []Quad
}

func (imageItem) isRenderable() {}

// Layered groups items with strict sequential draw order: earlier items
// are fully drawn before later items begin. Within each item, content is
// still free to merge.
//
// Nothing items are dropped; zero remaining items collapse to Nothing and
// a single remaining item collapses to that item (a one-element layer
// imposes no ordering).
func Layered(items ...Renderable) Renderable {
	kept := collapse(items)
	switch len(kept) {
	case 0:
		return Nothing
	case 1:
		return kept[0]
	}
	return layered{items: kept}
}

// Adjacent groups items with no ordering constraint among them. The
// batcher may merge drawables of the same texture across adjacent items
// into a single submission.
//
// Nothing items are dropped; zero remaining items collapse to Nothing and
// a single remaining item collapses to that item.
func Adjacent(items ...Renderable) Renderable {
	kept := collapse(items)
	switch len(kept) {
	case 0:
		return Nothing
	case 1:
		return kept[0]
	}
	return adjacent{items: kept}
}

// Text draws one shaped word with its origin at offset.
func Text(word text.Word, offset uikit.Point) Renderable {
	return textItem{word: word, offset: offset}
}

// Image draws quads sampling the given texture. An Image with no quads
// collapses to Nothing.
func Image(texture TextureSource, quads ...Quad) Renderable {
	if texture == nil || len(quads) == 0 {
		return Nothing
	}
	return imageItem{texture: texture, quads: quads}
}

// collapse drops Nothing items, keeping order. The input slice is left
// untouched; group constructors take variadic arguments that may alias
// caller-owned slices.
func collapse(items []Renderable) []Renderable {
	kept := make([]Renderable, 0, len(items))
	for _, it := range items {
		if it == nil || it == Nothing {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
