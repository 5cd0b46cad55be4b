// SPDX-License-Identifier: GPL-2.0-or-later
package texture

import (
	"image"

	"texlab/gfx"
)

type Texture struct {
	id     gfx.Texture
	Width  int32
	Height int32
	name   string
}

// pixels returns the tightly packed RGBA rows of img.
func pixels(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == 4*w && len(img.Pix) == 4*w*h {
		return img.Pix
	}
	data := make([]byte, 0, 4*w*h)
	for y := 0; y < h; y++ {
		row := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		data = append(data, img.Pix[row:row+4*w]...)
	}
	return data
}

// Load creates a 2D texture object holding img as 8 bit RGBA.
// The texture stays bound to the active unit.
func Load(dev gfx.Device, name string, img *image.NRGBA) *Texture {
	s := img.Bounds().Size()
	t := &Texture{
		id:     dev.GenTexture(),
		Width:  int32(s.X),
		Height: int32(s.Y),
		name:   name,
	}
	t.Bind(dev)
	dev.TexImage2D(gfx.Texture2D, t.Width, t.Height, pixels(img))
	return t
}

func (t *Texture) Bind(dev gfx.Device) {
	dev.BindTexture(gfx.Texture2D, t.id)
}

func (t *Texture) ID() gfx.Texture {
	return t.id
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) Texels() int {
	return int(t.Width * t.Height)
}
