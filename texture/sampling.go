// SPDX-License-Identifier: GPL-2.0-or-later
package texture

import (
	"texlab/filter"
	"texlab/gfx"
)

// ApplySampling configures the texture bound to the active unit: repeat
// wrapping, a freshly generated mipmap chain, the filters selected in s and
// the anisotropy level. The driver limits the anisotropy to what it
// supports. A filter mode outside its table leaves that filter untouched.
func ApplySampling(dev gfx.Device, s filter.Settings) {
	dev.TexParameteri(gfx.Texture2D, gfx.TextureWrapS, gfx.Repeat)
	dev.TexParameteri(gfx.Texture2D, gfx.TextureWrapT, gfx.Repeat)

	dev.GenerateMipmap(gfx.Texture2D)

	if f, ok := s.Mag.GL(); ok {
		dev.TexParameteri(gfx.Texture2D, gfx.TextureMagFilter, f)
	}
	if f, ok := s.Min.GL(); ok {
		dev.TexParameteri(gfx.Texture2D, gfx.TextureMinFilter, f)
	}

	dev.TexParameterf(gfx.Texture2D, gfx.TextureMaxAnisotropy, s.Anisotropy)
}

// MaxAnisotropy returns the largest anisotropy level the driver supports.
func MaxAnisotropy(dev gfx.Device) float32 {
	return max(dev.GetFloat(gfx.MaxTextureMaxAnisotropy), filter.MinAnisotropy)
}
