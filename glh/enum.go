// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"texlab/gfx"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Fails to compile if a gfx constant differs from its GL value.
func _() {
	var x [1]struct{}
	_ = x[gfx.Nearest-gl.NEAREST]
	_ = x[gfx.Linear-gl.LINEAR]
	_ = x[gfx.NearestMipmapNearest-gl.NEAREST_MIPMAP_NEAREST]
	_ = x[gfx.LinearMipmapNearest-gl.LINEAR_MIPMAP_NEAREST]
	_ = x[gfx.NearestMipmapLinear-gl.NEAREST_MIPMAP_LINEAR]
	_ = x[gfx.LinearMipmapLinear-gl.LINEAR_MIPMAP_LINEAR]
	_ = x[gfx.TextureMagFilter-gl.TEXTURE_MAG_FILTER]
	_ = x[gfx.TextureMinFilter-gl.TEXTURE_MIN_FILTER]
	_ = x[gfx.TextureWrapS-gl.TEXTURE_WRAP_S]
	_ = x[gfx.TextureWrapT-gl.TEXTURE_WRAP_T]
	_ = x[gfx.Repeat-gl.REPEAT]
	_ = x[gfx.TextureMaxAnisotropy-gl.TEXTURE_MAX_ANISOTROPY]
	_ = x[gfx.MaxTextureMaxAnisotropy-gl.MAX_TEXTURE_MAX_ANISOTROPY]
	_ = x[gfx.Texture2D-gl.TEXTURE_2D]
	_ = x[gfx.Texture0-gl.TEXTURE0]
	_ = x[gfx.CullFace-gl.CULL_FACE]
	_ = x[gfx.DepthTest-gl.DEPTH_TEST]
	_ = x[gfx.Blend-gl.BLEND]
	_ = x[gfx.SrcAlpha-gl.SRC_ALPHA]
	_ = x[gfx.OneMinusSrcAlpha-gl.ONE_MINUS_SRC_ALPHA]
	_ = x[gfx.DepthBufferBit-gl.DEPTH_BUFFER_BIT]
	_ = x[gfx.ColorBufferBit-gl.COLOR_BUFFER_BIT]
	_ = x[gfx.Triangles-gl.TRIANGLES]
	_ = x[gfx.UnsignedByte-gl.UNSIGNED_BYTE]
	_ = x[gfx.UnsignedInt-gl.UNSIGNED_INT]
	_ = x[gfx.Float-gl.FLOAT]
	_ = x[gfx.RGBA-gl.RGBA]
	_ = x[gfx.ArrayBuffer-gl.ARRAY_BUFFER]
	_ = x[gfx.ElementArrayBuffer-gl.ELEMENT_ARRAY_BUFFER]
}
