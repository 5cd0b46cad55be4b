// SPDX-License-Identifier: GPL-2.0-or-later

package geometry

import (
	"texlab/gfx"
	"texlab/math/vec"
)

// vertex attribute locations shared with the shaders
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribTexCoord = 2
)

const IndexCount = 6

// QuadData is the vertex data of a quad made of two triangles.
// Colors may hold fewer than four entries, the remaining vertices read
// whatever the driver returns past the end of the color buffer.
type QuadData struct {
	Positions [4]vec.Vec3
	Colors    []vec.Vec3
	TexCoords [4]vec.Vec2
	Indices   [IndexCount]uint32
}

// Quad is a QuadData living in GPU buffers.
type Quad struct {
	name  string
	va    gfx.VertexArray
	count int32
}

func uploadAttrib(dev gfx.Device, index uint32, size int32, data []float32) {
	b := dev.GenBuffer()
	dev.BindBuffer(gfx.ArrayBuffer, b)
	dev.BufferData(gfx.ArrayBuffer, data)
	dev.VertexAttribPointer(index, size, gfx.Float)
	dev.EnableVertexAttribArray(index)
}

// Upload creates the vertex array and buffers for q. It must be called once
// per quad before the quad is drawn.
func Upload(dev gfx.Device, name string, q QuadData) *Quad {
	va := dev.GenVertexArray()
	dev.BindVertexArray(va)

	uploadAttrib(dev, AttribPosition, 3, vec.Flatten3(q.Positions[:]))
	uploadAttrib(dev, AttribColor, 3, vec.Flatten3(q.Colors))
	uploadAttrib(dev, AttribTexCoord, 2, vec.Flatten2(q.TexCoords[:]))

	ib := dev.GenBuffer()
	dev.BindBuffer(gfx.ElementArrayBuffer, ib)
	dev.BufferIndices(gfx.ElementArrayBuffer, q.Indices[:])

	return &Quad{
		name:  name,
		va:    va,
		count: IndexCount,
	}
}

// Binding returns the vertex array to bind before drawing q and the number
// of indices to draw.
func (q *Quad) Binding() (gfx.VertexArray, int32) {
	return q.va, q.count
}

func (q *Quad) Name() string {
	return q.name
}

// vertex colors of both quads, only three for four vertices
var quadColors = []vec.Vec3{
	{0, 1, 1},
	{1, 0, 1},
	{1, 1, 0},
}

var quadIndices = [IndexCount]uint32{
	0, 1, 3, // triangle 1
	1, 2, 3, // triangle 2
}

// Ground is the long plane running away from the camera. Its texture repeats
// 15 times along the far direction.
func Ground() QuadData {
	return QuadData{
		Positions: [4]vec.Vec3{
			{-10, -5, -10},
			{-10, 100, -330},
			{10, 100, -330},
			{10, -5, -10},
		},
		Colors: quadColors,
		TexCoords: [4]vec.Vec2{
			{0, 0},
			{0, 15},
			{1, 15},
			{1, 0},
		},
		Indices: quadIndices,
	}
}

// Billboard is the upright quad facing the camera.
func Billboard() QuadData {
	return QuadData{
		Positions: [4]vec.Vec3{
			{-30, -5, -130},
			{-30, 50, -130},
			{30, 50, -130},
			{30, -5, -130},
		},
		Colors: quadColors,
		TexCoords: [4]vec.Vec2{
			{0, 0},
			{0, 1},
			{1, 1},
			{1, 0},
		},
		Indices: quadIndices,
	}
}
