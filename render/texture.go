// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Key principle: uikit RECEIVES the device from the host, it does NOT
// create one. The host (e.g. a gogpu.App) owns the device, queue and
// surface; uikit only threads the handle through to texture resolution so
// that sources backed by in-flight uploads can check readiness.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// uikit-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Texture is a ready GPU texture handle as seen by the core: an opaque
// resource with dimensions and a pixel format. The concrete type is owned
// by the rendering backend.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat
}

// TextureSource is an opaque reference to a texture asset that may still
// be loading. Composition trees carry sources, not textures: resolution
// happens at flush time, once per batched submission.
//
// Acquire must never block. A source whose underlying asset is not yet
// ready reports ok=false; the batcher then drops that submission for the
// current frame and moves on. The frame after the asset becomes ready
// picks it up naturally, because composition trees are rebuilt every
// frame.
type TextureSource interface {
	// Key is a stable identity for batching: two sources with equal keys
	// refer to the same underlying texture and their quads may share a
	// draw submission.
	Key() uint64

	// Acquire resolves the source. It returns the ready texture, or
	// ok=false if the asset has not finished loading or uploading.
	Acquire(dev DeviceHandle) (tex Texture, ok bool)
}

// nextTextureKey issues process-unique keys for sources created by this
// package.
var nextTextureKey atomic.Uint64

// StaticSource wraps an already-resolved Texture as a TextureSource. It is
// always ready. Useful for textures the host uploaded before the first
// frame, such as a solid-fill or debug-overlay texture.
type StaticSource struct {
	key uint64
	tex Texture
}

// NewStaticSource creates a TextureSource around a ready texture.
func NewStaticSource(tex Texture) *StaticSource {
	return &StaticSource{key: nextTextureKey.Add(1), tex: tex}
}

// Key returns the source's batching identity.
func (s *StaticSource) Key() uint64 { return s.key }

// Acquire returns the wrapped texture. It is always ready.
func (s *StaticSource) Acquire(DeviceHandle) (Texture, bool) {
	return s.tex, true
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used where no GPU is available, such as tests against a recording
// backend.
type NullDeviceHandle struct{}

var _ DeviceHandle = NullDeviceHandle{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns the zero AdapterInfo, reporting an unknown adapter.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns an undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}
