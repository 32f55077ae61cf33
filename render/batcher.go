// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/uikit"
)

// Batcher linearizes a Renderable tree into the minimum number of backend
// draw submissions consistent with the tree's ordering semantics.
//
// The algorithm is greedy run-length coalescing: content accumulates into
// an open text buffer and an open quad buffer, and a buffer is flushed as
// one submission only when forced. The only flush triggers are a texture
// change, a Layered boundary, and the end of the tree. Within those
// constraints the result is optimal for the given tree shape: exactly one
// submission per maximal run of texture-homogeneous quad content or text
// content.
//
// A Batcher is reused across frames but is not safe for concurrent use;
// the composition walk runs on the single UI/render thread.
type Batcher struct {
	backend Backend
	device  DeviceHandle

	// Accumulation state, reused across frames to avoid reallocation.
	text    []TextRun
	quads   []Quad
	texture TextureSource

	// work is the explicit traversal stack, reused across frames.
	work []workItem
}

// workItem is one entry on the traversal stack: either a subtree to visit
// or a flush marker emitted by a Layered boundary.
type workItem struct {
	r     Renderable
	flush bool
}

// BatcherOption configures a Batcher during creation.
type BatcherOption func(*Batcher)

// WithDevice supplies the host GPU device handle passed to texture
// resolution. Without it, sources receive a NullDeviceHandle.
func WithDevice(dev DeviceHandle) BatcherOption {
	return func(b *Batcher) {
		b.device = dev
	}
}

// NewBatcher creates a Batcher submitting to the given backend.
func NewBatcher(backend Backend, opts ...BatcherOption) *Batcher {
	b := &Batcher{
		backend: backend,
		device:  NullDeviceHandle{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render walks the tree depth-first in declaration order and submits the
// resulting batches to the backend. The walk is iterative: the recursion
// in the tree is pure data-dependent descent, so an explicit work stack
// replaces call-stack recursion.
//
// Layered items force a flush of everything accumulated so far before
// each item after the first, guaranteeing earlier layers are fully drawn
// before later ones begin. Adjacent items accumulate into the same open
// buffers, which is what lets same-texture content merge across siblings.
func (b *Batcher) Render(tree Renderable, target Target, view *View) {
	b.work = append(b.work[:0], workItem{r: tree})

	for len(b.work) > 0 {
		it := b.work[len(b.work)-1]
		b.work = b.work[:len(b.work)-1]

		if it.flush {
			b.flush(target, view)
			continue
		}

		switch v := it.r.(type) {
		case nil, nothing:
			// No-op.
		case textItem:
			b.text = append(b.text, TextRun{Offset: v.offset, Word: v.word})
		case imageItem:
			if len(b.quads) > 0 && b.texture != nil && b.texture.Key() != v.texture.Key() {
				b.flush(target, view)
			}
			b.texture = v.texture
			b.quads = append(b.quads, v.quads...)
		case adjacent:
			// Push in reverse so items pop in declaration order.
			for i := len(v.items) - 1; i >= 0; i-- {
				b.work = append(b.work, workItem{r: v.items[i]})
			}
		case layered:
			// Visit item 0 without a flush; force a flush before every
			// subsequent item. Pushed in reverse pop order:
			// item0, flush, item1, flush, item2, ...
			for i := len(v.items) - 1; i >= 1; i-- {
				b.work = append(b.work, workItem{r: v.items[i]}, workItem{flush: true})
			}
			if len(v.items) > 0 {
				b.work = append(b.work, workItem{r: v.items[0]})
			}
		}
	}

	// Drain whatever is still accumulated.
	b.flush(target, view)
}

// flush submits the open buffers. A non-empty text buffer becomes one text
// submission; a non-empty quad buffer becomes one textured-quad submission
// once its texture source resolves. A source that is not ready causes the
// buffered quads to be dropped for this frame; composition never stalls on
// a loading asset. Empty buffers never produce a submission.
func (b *Batcher) flush(target Target, view *View) {
	if len(b.text) > 0 {
		b.backend.DrawText(target, view, b.text)
		b.text = b.text[:0]
	}
	if len(b.quads) > 0 {
		if tex, ok := b.texture.Acquire(b.device); ok {
			b.backend.DrawQuads(target, view, tex, b.quads)
		} else {
			uikit.Logger().Debug("render: texture not ready, dropping batch",
				"key", b.texture.Key(), "quads", len(b.quads))
		}
		b.quads = b.quads[:0]
	}
	b.texture = nil
}
