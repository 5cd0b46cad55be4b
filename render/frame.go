// SPDX-License-Identifier: GPL-2.0-or-later

// Package render issues the fixed draw sequence of one frame.
package render

import (
	"texlab/geometry"
	"texlab/gfx"
	"texlab/math/mat"
	"texlab/texture"
)

const (
	FieldOfView = 45
	NearPlane   = 0.01
	FarPlane    = 300
)

var clearColor = [4]float32{0.2, 0.2, 0.8, 1}

const (
	uniformProjection = "projectionMatrix"
	uniformCamera     = "cameraPosition"
)

// Projection returns the projection used for a w x h framebuffer.
func Projection(w, h int32) *mat.Matrix {
	return mat.Perspective(FieldOfView, float32(w)/float32(h), NearPlane, FarPlane)
}

// RenderFrame draws quads[i] with bank.At(i) for every quad. A framebuffer
// without area draws nothing.
func RenderFrame(dev gfx.Device, w, h int32, prog gfx.Program, st *AppState, quads []*geometry.Quad, bank *texture.Bank) {
	if w <= 0 || h <= 0 {
		return
	}
	dev.Viewport(0, 0, w, h)
	dev.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	dev.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	dev.Disable(gfx.CullFace)
	dev.Disable(gfx.DepthTest)

	dev.UseProgram(prog)

	dev.UniformMatrix4(dev.UniformLocation(prog, uniformProjection), true, Projection(w, h).Data())
	dev.Uniform3f(dev.UniformLocation(prog, uniformCamera), st.CameraPan, 0, 0)

	for i, q := range quads {
		dev.ActiveTexture(gfx.Texture0)
		bank.At(i).Bind(dev)
		texture.ApplySampling(dev, st.Filter)

		va, count := q.Binding()
		dev.BindVertexArray(va)
		dev.DrawElements(gfx.Triangles, count, gfx.UnsignedInt)
	}

	dev.UseProgram(0)
}
