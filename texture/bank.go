// SPDX-License-Identifier: GPL-2.0-or-later
package texture

// Bank holds the textures of the scene in draw order.
type Bank struct {
	textures []*Texture
}

func NewBank(ts ...*Texture) *Bank {
	return &Bank{textures: ts}
}

func (b *Bank) At(i int) *Texture {
	return b.textures[i]
}

func (b *Bank) Len() int {
	return len(b.textures)
}

// Texels returns the number of base level texels of all textures.
func (b *Bank) Texels() int {
	n := 0
	for _, t := range b.textures {
		n += t.Texels()
	}
	return n
}
