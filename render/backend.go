// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/text"
)

// Target is the destination a frame is composed into: a swapchain frame,
// an offscreen texture, anything the backend can draw to. The core only
// sees its dimensions and pixel format; the concrete type belongs to the
// backend.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat
}

// TextRun pairs a shaped word with the offset it is drawn at. A text
// submission is a batch of runs drawn in one backend call.
type TextRun struct {
	Offset uikit.Point
	Word   text.Word
}

// Backend accepts the two submission kinds the batcher produces. Both are
// fire-and-forget: the core consumes no return value and performs no
// retries. Submissions arrive in draw order; the backend must preserve
// that order within a frame.
//
// The slices passed to DrawText and DrawQuads are owned by the caller and
// reused across flushes; backends must copy what they keep beyond the
// call.
type Backend interface {
	// DrawText submits one batch of shaped text runs.
	DrawText(target Target, view *View, runs []TextRun)

	// DrawQuads submits one batch of quads sampling a single texture.
	DrawQuads(target Target, view *View, texture Texture, quads []Quad)
}
