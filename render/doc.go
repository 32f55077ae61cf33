// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render provides the per-frame composition tree and the batching
// engine that linearizes it into GPU draw submissions.
//
// # Composition trees
//
// A frame is described declaratively as a Renderable tree built from
// Nothing, Text, Image, Adjacent and Layered nodes. The tree encodes
// ordering and nothing else: Adjacent content may be merged freely, while
// Layered imposes strict draw order between its items.
//
//	tree := render.Layered(
//	    render.Image(background, bgQuad),
//	    render.Adjacent(
//	        render.Image(atlas, spriteA, spriteB),
//	        render.Text(word, uikit.Pt(12, 40)),
//	    ),
//	)
//
// # Batching
//
// Batcher walks the tree and coalesces maximal runs of compatible content
// (same-texture quads, text runs) into single Backend submissions. Flushes
// happen only at texture changes, Layered boundaries and the end of the
// tree, which makes the result optimal for the given tree shape.
//
// # Host contracts
//
// The GPU side stays with the host application: it implements Backend,
// Target and TextureSource, and hands uikit a DeviceHandle
// (gpucontext.DeviceProvider). Texture resolution is the only point where
// composition touches asset loading, and it never blocks: a not-yet-ready
// texture drops its submission for the frame.
package render
