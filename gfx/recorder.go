// SPDX-License-Identifier: GPL-2.0-or-later

package gfx

import (
	"fmt"
)

// Call is one recorded Device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// TextureState is what a Recorder knows about a texture object.
type TextureState struct {
	Width      int32
	Height     int32
	Params     map[Enum]Enum
	Anisotropy float32
	Mipmapped  bool
}

// Recorder is a Device without a GPU. It logs every call and tracks enough
// texture state to tell which texture object a parameter call landed on.
type Recorder struct {
	Calls []Call
	// MaxAnisotropy is reported for MAX_TEXTURE_MAX_ANISOTROPY and used to
	// clamp TEXTURE_MAX_ANISOTROPY the way a driver does.
	MaxAnisotropy float32
	Textures      map[Texture]*TextureState

	next       uint32
	activeUnit Enum
	bound      map[Enum]Texture
	locations  map[string]int32
}

func NewRecorder() *Recorder {
	return &Recorder{
		MaxAnisotropy: 16,
		Textures:      make(map[Texture]*TextureState),
		activeUnit:    Texture0,
		bound:         make(map[Enum]Texture),
		locations:     make(map[string]int32),
	}
}

// Reset drops the call log but keeps the object state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Named returns the recorded calls with the given name in order.
func (r *Recorder) Named(name string) []Call {
	var cs []Call
	for _, c := range r.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Bound returns the texture bound to the active unit.
func (r *Recorder) Bound() Texture {
	return r.bound[r.activeUnit]
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) GenVertexArray() VertexArray {
	va := VertexArray(r.id())
	r.record("GenVertexArray", va)
	return va
}

func (r *Recorder) BindVertexArray(va VertexArray) {
	r.record("BindVertexArray", va)
}

func (r *Recorder) GenBuffer() Buffer {
	b := Buffer(r.id())
	r.record("GenBuffer", b)
	return b
}

func (r *Recorder) BindBuffer(target Enum, b Buffer) {
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferData(target Enum, data []float32) {
	r.record("BufferData", target, append([]float32(nil), data...))
}

func (r *Recorder) BufferIndices(target Enum, data []uint32) {
	r.record("BufferIndices", target, append([]uint32(nil), data...))
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ Enum) {
	r.record("VertexAttribPointer", index, size, typ)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) GenTexture() Texture {
	t := Texture(r.id())
	r.Textures[t] = &TextureState{Params: make(map[Enum]Enum)}
	r.record("GenTexture", t)
	return t
}

func (r *Recorder) ActiveTexture(unit Enum) {
	r.activeUnit = unit
	r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(target Enum, t Texture) {
	r.bound[r.activeUnit] = t
	r.record("BindTexture", target, t)
}

func (r *Recorder) current() *TextureState {
	if ts, ok := r.Textures[r.Bound()]; ok {
		return ts
	}
	// Texture 0 exists in GL too.
	ts := &TextureState{Params: make(map[Enum]Enum)}
	r.Textures[r.Bound()] = ts
	return ts
}

func (r *Recorder) TexImage2D(target Enum, width, height int32, pixels []byte) {
	ts := r.current()
	ts.Width, ts.Height = width, height
	r.record("TexImage2D", target, width, height, len(pixels))
}

func (r *Recorder) TexParameteri(target, pname, param Enum) {
	r.current().Params[pname] = param
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) TexParameterf(target, pname Enum, param float32) {
	if pname == TextureMaxAnisotropy {
		r.current().Anisotropy = min(max(param, 1), r.MaxAnisotropy)
	}
	r.record("TexParameterf", target, pname, param)
}

func (r *Recorder) GenerateMipmap(target Enum) {
	r.current().Mipmapped = true
	r.record("GenerateMipmap", target)
}

func (r *Recorder) GetFloat(pname Enum) float32 {
	r.record("GetFloat", pname)
	if pname == MaxTextureMaxAnisotropy {
		return r.MaxAnisotropy
	}
	return 0
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) Enable(capability Enum) {
	r.record("Enable", capability)
}

func (r *Recorder) Disable(capability Enum) {
	r.record("Disable", capability)
}

func (r *Recorder) BlendFunc(src, dst Enum) {
	r.record("BlendFunc", src, dst)
}

func (r *Recorder) UseProgram(p Program) {
	r.record("UseProgram", p)
}

func (r *Recorder) UniformLocation(p Program, name string) int32 {
	key := fmt.Sprintf("%d/%s", p, name)
	loc, ok := r.locations[key]
	if !ok {
		loc = int32(len(r.locations))
		r.locations[key] = loc
	}
	r.record("UniformLocation", p, name)
	return loc
}

func (r *Recorder) UniformMatrix4(location int32, transpose bool, m *[16]float32) {
	r.record("UniformMatrix4", location, transpose, *m)
}

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.record("Uniform3f", location, x, y, z)
}

func (r *Recorder) DrawElements(mode Enum, count int32, typ Enum) {
	r.record("DrawElements", mode, count, typ, r.Bound())
}
