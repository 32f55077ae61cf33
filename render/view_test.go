// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/uikit"
)

func TestViewCenterOn(t *testing.T) {
	v := NewView(uikit.Rect{W: 200, H: 100})
	v.CenterOn(50, 50)

	if v.Origin != uikit.Pt(-50, 0) {
		t.Errorf("Origin = %v, want {-50 0}", v.Origin)
	}
}

func TestViewCenterOnRespectsZoom(t *testing.T) {
	v := NewView(uikit.Rect{W: 200, H: 100})
	v.Zoom = 2
	v.CenterOn(50, 50)

	// At zoom 2 the viewport spans 100x50 world units.
	if v.Origin != uikit.Pt(0, 25) {
		t.Errorf("Origin = %v, want {0 25}", v.Origin)
	}
}

func TestProjectionMatrixMapsOrigin(t *testing.T) {
	v := NewView(uikit.Rect{W: 200, H: 100})
	m := v.ProjectionMatrix()

	// World (0,0) with origin (0,0) must land at clip (-1, 1): top-left.
	x := m[0]*0 + m[12]
	y := m[5]*0 + m[13]
	if x != -1 || y != 1 {
		t.Errorf("origin maps to (%v, %v), want (-1, 1)", x, y)
	}

	// Viewport center maps to clip (0, 0).
	cx := m[0]*100 + m[12]
	cy := m[5]*50 + m[13]
	if cx != 0 || cy != 0 {
		t.Errorf("center maps to (%v, %v), want (0, 0)", cx, cy)
	}
}
