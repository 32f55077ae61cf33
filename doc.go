// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package uikit provides the rendering-composition and UI-layout core for
// interactive GPU clients.
//
// # Overview
//
// uikit sits between an application's widget code and a GPU rendering
// backend. Per frame it answers two questions:
//
//   - How should drawable primitives (shaped text runs, textured quads)
//     be grouped into the fewest possible draw submissions while honoring
//     ordering constraints? See the render subpackage.
//   - How does a tree of widgets compute its flexbox layout, propagate
//     relayout invalidation, and dispatch pointer events? See the ui and
//     layout subpackages.
//
// The GPU device, window surface, shader pipelines, asset loading and text
// shaping all stay on the host side and are consumed through narrow
// contracts: render.Backend, render.Target, render.TextureSource,
// render.DeviceHandle and layout.Solver.
//
// # Architecture
//
// The library is organized into:
//   - uikit: shared float32 geometry (Point, Size, Rect) and logging
//   - render: the per-frame composition tree and the batching engine
//   - text: shaped word values consumed from go-text/typesetting
//   - layout: style types, the solver contract and the flex-backed solver
//   - ui: retained widget tree, invalidation, layout bridge, pointer events
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All geometry is float32: GPU vertex data, the flexbox solver and shaped
// glyph metrics are single precision, so the core stays in float32 end to
// end.
package uikit
