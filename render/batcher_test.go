// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/text"
)

// fakeTexture is a trivially ready Texture.
type fakeTexture struct {
	w, h uint32
}

func (f fakeTexture) Width() uint32                  { return f.w }
func (f fakeTexture) Height() uint32                 { return f.h }
func (f fakeTexture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// notReadySource is a TextureSource whose asset never resolves.
type notReadySource struct {
	key uint64
}

func (s notReadySource) Key() uint64                          { return s.key }
func (s notReadySource) Acquire(DeviceHandle) (Texture, bool) { return nil, false }

// submission is one recorded backend call.
type submission struct {
	text  []TextRun
	tex   Texture
	quads []Quad
}

func (s submission) isText() bool { return s.text != nil }

// recordingBackend captures submissions in order. Buffers are copied, as
// the Backend contract requires.
type recordingBackend struct {
	subs []submission
}

func (r *recordingBackend) DrawText(_ Target, _ *View, runs []TextRun) {
	r.subs = append(r.subs, submission{text: append([]TextRun(nil), runs...)})
}

func (r *recordingBackend) DrawQuads(_ Target, _ *View, tex Texture, quads []Quad) {
	r.subs = append(r.subs, submission{tex: tex, quads: append([]Quad(nil), quads...)})
}

// fakeTarget satisfies Target for tests.
type fakeTarget struct{}

func (fakeTarget) Width() int                     { return 800 }
func (fakeTarget) Height() int                    { return 600 }
func (fakeTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func quadAt(x float32) Quad {
	return QuadRect(uikit.Rect{X: x, Y: 0, W: 1, H: 1}, White, UVFull)
}

func word(s string) text.Word {
	return text.NewWord(s, shapedRun(float32(len(s))*8))
}

func renderTree(t *testing.T, tree Renderable) *recordingBackend {
	t.Helper()
	backend := &recordingBackend{}
	b := NewBatcher(backend)
	b.Render(tree, fakeTarget{}, NewView(uikit.Rect{W: 800, H: 600}))
	return backend
}

func TestBatcherNothingSubmitsNothing(t *testing.T) {
	backend := renderTree(t, Nothing)
	if len(backend.subs) != 0 {
		t.Fatalf("got %d submissions, want 0", len(backend.subs))
	}
}

func TestBatcherAdjacentSameTextureMerges(t *testing.T) {
	tex := NewStaticSource(fakeTexture{w: 16, h: 16})
	q1, q2 := quadAt(0), quadAt(10)

	backend := renderTree(t, Adjacent(Image(tex, q1), Image(tex, q2)))

	if len(backend.subs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(backend.subs))
	}
	got := backend.subs[0].quads
	if len(got) != 2 || got[0] != q1 || got[1] != q2 {
		t.Errorf("merged quads = %v, want [q1 q2] in order", got)
	}
}

func TestBatcherAdjacentDifferentTexturesCut(t *testing.T) {
	tex1 := NewStaticSource(fakeTexture{w: 16, h: 16})
	tex2 := NewStaticSource(fakeTexture{w: 32, h: 32})
	q1, q2 := quadAt(0), quadAt(10)

	backend := renderTree(t, Adjacent(Image(tex1, q1), Image(tex2, q2)))

	if len(backend.subs) != 2 {
		t.Fatalf("got %d submissions, want 2", len(backend.subs))
	}
	if backend.subs[0].quads[0] != q1 || backend.subs[1].quads[0] != q2 {
		t.Error("submissions out of declaration order")
	}
}

func TestBatcherLayeredForcesCuts(t *testing.T) {
	tex := NewStaticSource(fakeTexture{w: 16, h: 16})
	q1, q2, q3 := quadAt(0), quadAt(10), quadAt(20)

	// Same texture throughout: only the layer boundaries may cut.
	backend := renderTree(t, Layered(Image(tex, q1), Image(tex, q2), Image(tex, q3)))

	if len(backend.subs) != 3 {
		t.Fatalf("got %d submissions, want 3 (one per layer)", len(backend.subs))
	}
	for i, q := range []Quad{q1, q2, q3} {
		if backend.subs[i].quads[0] != q {
			t.Errorf("layer %d flushed out of order", i)
		}
	}
}

func TestBatcherLayeredItemsMergeWithinLayer(t *testing.T) {
	tex := NewStaticSource(fakeTexture{w: 16, h: 16})
	q1, q2, q3 := quadAt(0), quadAt(10), quadAt(20)

	tree := Layered(
		Adjacent(Image(tex, q1), Image(tex, q2)),
		Image(tex, q3),
	)
	backend := renderTree(t, tree)

	if len(backend.subs) != 2 {
		t.Fatalf("got %d submissions, want 2", len(backend.subs))
	}
	if len(backend.subs[0].quads) != 2 {
		t.Errorf("first layer has %d quads, want 2 merged", len(backend.subs[0].quads))
	}
	if len(backend.subs[1].quads) != 1 || backend.subs[1].quads[0] != q3 {
		t.Error("second layer should carry exactly q3")
	}
}

func TestBatcherTextNeverForcesCut(t *testing.T) {
	tex := NewStaticSource(fakeTexture{w: 16, h: 16})

	tree := Adjacent(
		Image(tex, quadAt(0)),
		Text(word("hello"), uikit.Pt(0, 0)),
		Text(word("world"), uikit.Pt(50, 0)),
		Image(tex, quadAt(10)),
	)
	backend := renderTree(t, tree)

	// One text submission with both runs, one quad submission with both
	// quads: interleaved text must not split a texture-homogeneous run.
	var texts, images int
	for _, s := range backend.subs {
		if s.isText() {
			texts++
			if len(s.text) != 2 {
				t.Errorf("text submission has %d runs, want 2", len(s.text))
			}
		} else {
			images++
			if len(s.quads) != 2 {
				t.Errorf("quad submission has %d quads, want 2", len(s.quads))
			}
		}
	}
	if texts != 1 || images != 1 {
		t.Fatalf("got %d text / %d image submissions, want 1 / 1", texts, images)
	}
}

func TestBatcherLayeredFlushOrdering(t *testing.T) {
	tex1 := NewStaticSource(fakeTexture{w: 16, h: 16})
	tex2 := NewStaticSource(fakeTexture{w: 32, h: 32})

	// Layer A produces two submissions (texture change); both must land
	// before anything from layer B.
	tree := Layered(
		Adjacent(Image(tex1, quadAt(0)), Image(tex2, quadAt(10))),
		Image(tex1, quadAt(20)),
	)
	backend := renderTree(t, tree)

	if len(backend.subs) != 3 {
		t.Fatalf("got %d submissions, want 3", len(backend.subs))
	}
	wantX := []float32{0, 10, 20}
	for i, s := range backend.subs {
		if s.quads[0][0].Position.X != wantX[i] {
			t.Errorf("submission %d carries quad at x=%v, want %v",
				i, s.quads[0][0].Position.X, wantX[i])
		}
	}
}

func TestBatcherSubmissionCounts(t *testing.T) {
	tex1 := NewStaticSource(fakeTexture{w: 16, h: 16})
	tex2 := NewStaticSource(fakeTexture{w: 32, h: 32})

	tests := []struct {
		name string
		tree Renderable
		want int
	}{
		{"nothing", Nothing, 0},
		{"single image", Image(tex1, quadAt(0)), 1},
		{"single text", Text(word("a"), uikit.Pt(0, 0)), 1},
		{"nothing inside adjacent", Adjacent(Nothing, Image(tex1, quadAt(0)), Nothing), 1},
		{"deeply nested same texture", Adjacent(
			Adjacent(Image(tex1, quadAt(0)), Adjacent(Image(tex1, quadAt(1)))),
			Image(tex1, quadAt(2)),
		), 1},
		{"texture alternation", Adjacent(
			Image(tex1, quadAt(0)), Image(tex2, quadAt(1)), Image(tex1, quadAt(2)),
		), 3},
		{"layered of empty layers", Layered(Nothing, Nothing), 0},
		{"layered nested in adjacent", Adjacent(
			Image(tex1, quadAt(0)),
			Layered(Image(tex1, quadAt(1)), Image(tex1, quadAt(2))),
		), 2},
		{"text and image", Adjacent(Text(word("a"), uikit.Pt(0, 0)), Image(tex1, quadAt(0))), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := renderTree(t, tt.tree)
			if len(backend.subs) != tt.want {
				t.Errorf("got %d submissions, want %d", len(backend.subs), tt.want)
			}
		})
	}
}

func TestBatcherNotReadyTextureDropped(t *testing.T) {
	ready := NewStaticSource(fakeTexture{w: 16, h: 16})
	loading := notReadySource{key: ^uint64(0)}

	tree := Adjacent(
		Image(loading, quadAt(0)),
		Image(ready, quadAt(10)),
	)
	backend := renderTree(t, tree)

	// The loading texture's batch is dropped silently; the ready one is
	// unaffected.
	if len(backend.subs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(backend.subs))
	}
	if backend.subs[0].quads[0] != quadAt(10) {
		t.Error("surviving submission should carry the ready texture's quad")
	}
}

func TestBatcherReuseAcrossFrames(t *testing.T) {
	tex := NewStaticSource(fakeTexture{w: 16, h: 16})
	backend := &recordingBackend{}
	b := NewBatcher(backend)
	target := fakeTarget{}
	view := NewView(uikit.Rect{W: 800, H: 600})

	b.Render(Image(tex, quadAt(0)), target, view)
	b.Render(Image(tex, quadAt(1)), target, view)

	if len(backend.subs) != 2 {
		t.Fatalf("got %d submissions across two frames, want 2", len(backend.subs))
	}
	if len(backend.subs[1].quads) != 1 {
		t.Error("second frame must not carry first frame's quads")
	}
}
