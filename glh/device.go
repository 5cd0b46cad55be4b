// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"texlab/gfx"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Device is the gfx.Device of the current GL context. All calls have to be
// made from the thread owning the context.
type Device struct{}

var _ gfx.Device = Device{}

func (Device) GenVertexArray() gfx.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return gfx.VertexArray(a)
}

func (Device) BindVertexArray(va gfx.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

func (Device) GenBuffer() gfx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.Buffer(b)
}

func (Device) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (Device) BufferData(target gfx.Enum, data []float32) {
	gl.BufferData(uint32(target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (Device) BufferIndices(target gfx.Enum, data []uint32) {
	gl.BufferData(uint32(target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (Device) VertexAttribPointer(index uint32, size int32, typ gfx.Enum) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), false, 0, 0)
}

func (Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Device) GenTexture() gfx.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gfx.Texture(t)
}

func (Device) ActiveTexture(unit gfx.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (Device) BindTexture(target gfx.Enum, t gfx.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (Device) TexImage2D(target gfx.Enum, width, height int32, pixels []byte) {
	gl.TexImage2D(uint32(target), 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (Device) TexParameteri(target, pname, param gfx.Enum) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Device) TexParameterf(target, pname gfx.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (Device) GenerateMipmap(target gfx.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (Device) GetFloat(pname gfx.Enum) float32 {
	var f float32
	gl.GetFloatv(uint32(pname), &f)
	return f
}

func (Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Device) Clear(mask gfx.Enum) {
	gl.Clear(uint32(mask))
}

func (Device) Enable(capability gfx.Enum) {
	gl.Enable(uint32(capability))
}

func (Device) Disable(capability gfx.Enum) {
	gl.Disable(uint32(capability))
}

func (Device) BlendFunc(src, dst gfx.Enum) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (Device) UseProgram(p gfx.Program) {
	gl.UseProgram(uint32(p))
}

func (Device) UniformLocation(p gfx.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (Device) UniformMatrix4(location int32, transpose bool, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &m[0])
}

func (Device) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (Device) DrawElements(mode gfx.Enum, count int32, typ gfx.Enum) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(0))
}
