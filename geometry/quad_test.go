// SPDX-License-Identifier: GPL-2.0-or-later

package geometry

import (
	"reflect"
	"testing"

	"texlab/gfx"
)

func TestUploadLayout(t *testing.T) {
	r := gfx.NewRecorder()
	q := Upload(r, "test", Ground())

	ptrs := r.Named("VertexAttribPointer")
	want := [][]any{
		{uint32(AttribPosition), int32(3), gfx.Float},
		{uint32(AttribColor), int32(3), gfx.Float},
		{uint32(AttribTexCoord), int32(2), gfx.Float},
	}
	if len(ptrs) != len(want) {
		t.Fatalf("got %d attribute pointers, want %d", len(ptrs), len(want))
	}
	for i, c := range ptrs {
		if !reflect.DeepEqual(c.Args, want[i]) {
			t.Errorf("attribute %d = %v, want %v", i, c.Args, want[i])
		}
	}
	if got := len(r.Named("EnableVertexAttribArray")); got != 3 {
		t.Errorf("enabled %d attributes, want 3", got)
	}

	va, n := q.Binding()
	if n != 6 {
		t.Errorf("index count = %d, want 6", n)
	}
	gen := r.Named("GenVertexArray")
	if len(gen) != 1 || gen[0].Args[0] != va {
		t.Errorf("Binding() vertex array = %v, generated %v", va, gen)
	}
}

func TestUploadData(t *testing.T) {
	r := gfx.NewRecorder()
	Upload(r, "test", Billboard())

	data := r.Named("BufferData")
	if len(data) != 3 {
		t.Fatalf("got %d vertex uploads, want 3", len(data))
	}
	positions := data[0].Args[1].([]float32)
	if len(positions) != 12 || positions[0] != -30 || positions[11] != -130 {
		t.Errorf("positions = %v", positions)
	}
	colors := data[1].Args[1].([]float32)
	if len(colors) != 9 {
		t.Errorf("uploaded %d color floats, want 9 (three vertices)", len(colors))
	}
	texcoords := data[2].Args[1].([]float32)
	if want := []float32{0, 0, 0, 1, 1, 1, 1, 0}; !reflect.DeepEqual(texcoords, want) {
		t.Errorf("texcoords = %v, want %v", texcoords, want)
	}

	idx := r.Named("BufferIndices")
	if len(idx) != 1 {
		t.Fatalf("got %d index uploads, want 1", len(idx))
	}
	if got, want := idx[0].Args[1].([]uint32), []uint32{0, 1, 3, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("indices = %v, want %v", got, want)
	}
	if got := idx[0].Args[0]; got != gfx.ElementArrayBuffer {
		t.Errorf("index target = %v, want ELEMENT_ARRAY_BUFFER", got)
	}
}

func TestUploadBindsVertexArrayFirst(t *testing.T) {
	r := gfx.NewRecorder()
	Upload(r, "test", Ground())
	if len(r.Calls) < 2 || r.Calls[0].Name != "GenVertexArray" || r.Calls[1].Name != "BindVertexArray" {
		t.Errorf("upload starts with %v", r.Calls[:2])
	}
}

func TestGroundRepeats(t *testing.T) {
	g := Ground()
	if g.TexCoords[1].T != 15 || g.TexCoords[2].T != 15 {
		t.Errorf("ground texcoords = %v", g.TexCoords)
	}
	if len(g.Colors) != 3 {
		t.Errorf("ground has %d colors, want 3", len(g.Colors))
	}
}

func TestStoreOrder(t *testing.T) {
	r := gfx.NewRecorder()
	s := NewStore(r)
	qs := s.Quads()
	if len(qs) != 2 {
		t.Fatalf("store has %d quads", len(qs))
	}
	if qs[0].Name() != GroundName || qs[1].Name() != BillboardName {
		t.Errorf("draw order = %s, %s", qs[0].Name(), qs[1].Name())
	}
	// billboard is uploaded first
	gen := r.Named("GenVertexArray")
	bva, _ := qs[1].Binding()
	if gen[0].Args[0] != bva {
		t.Errorf("first vertex array %v, billboard has %v", gen[0].Args[0], bva)
	}
}
