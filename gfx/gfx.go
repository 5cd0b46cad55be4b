// SPDX-License-Identifier: GPL-2.0-or-later

// Package gfx is the narrow slice of OpenGL the texture lab draws through.
// The constants carry the GL values unchanged so an implementation can pass
// them straight to the driver.
package gfx

type Enum uint32

const (
	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703

	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	Repeat           Enum = 0x2901

	TextureMaxAnisotropy    Enum = 0x84FE
	MaxTextureMaxAnisotropy Enum = 0x84FF

	Texture2D Enum = 0x0DE1
	Texture0  Enum = 0x84C0

	CullFace  Enum = 0x0B44
	DepthTest Enum = 0x0B71
	Blend     Enum = 0x0BE2

	SrcAlpha         Enum = 0x0302
	OneMinusSrcAlpha Enum = 0x0303

	DepthBufferBit Enum = 0x00000100
	ColorBufferBit Enum = 0x00004000

	Triangles    Enum = 0x0004
	UnsignedByte Enum = 0x1401
	UnsignedInt  Enum = 0x1405
	Float        Enum = 0x1406
	RGBA         Enum = 0x1908

	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
)

type (
	VertexArray uint32
	Buffer      uint32
	Texture     uint32
	Program     uint32
)

// Device issues GL calls. Every call acts on the GL context that is current
// on the calling thread; texture parameter calls act on whatever texture is
// bound to the active unit.
type Device interface {
	GenVertexArray() VertexArray
	BindVertexArray(va VertexArray)
	GenBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	// BufferData uploads data as STATIC_DRAW to the buffer bound to target.
	BufferData(target Enum, data []float32)
	BufferIndices(target Enum, data []uint32)
	// VertexAttribPointer describes tightly packed attributes of the bound
	// ARRAY_BUFFER starting at offset 0.
	VertexAttribPointer(index uint32, size int32, typ Enum)
	EnableVertexAttribArray(index uint32)

	GenTexture() Texture
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	// TexImage2D uploads level 0 as 8 bit RGBA.
	TexImage2D(target Enum, width, height int32, pixels []byte)
	TexParameteri(target, pname, param Enum)
	TexParameterf(target, pname Enum, param float32)
	GenerateMipmap(target Enum)
	GetFloat(pname Enum) float32

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	Disable(capability Enum)
	BlendFunc(src, dst Enum)

	UseProgram(p Program)
	UniformLocation(p Program, name string) int32
	UniformMatrix4(location int32, transpose bool, m *[16]float32)
	Uniform3f(location int32, x, y, z float32)

	DrawElements(mode Enum, count int32, typ Enum)
}
