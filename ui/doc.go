// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ui provides a retained widget tree with flexbox layout,
// render-tree extraction and pointer event routing.
//
// Widgets are cheap shared handles: copying one copies a reference, so
// application code and the UI can both hold the same node and mutate it.
// Mutations mark the owning UI's layout stale; the next RenderInfo or
// MouseMove call solves the whole tree in one pass.
//
// Content is supplied through the Element interface. An element that
// also implements PointerHandler or HoverHandler receives pointer events
// for its widget's solved rectangle.
package ui
