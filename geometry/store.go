// SPDX-License-Identifier: GPL-2.0-or-later

package geometry

import (
	"texlab/gfx"
)

const (
	GroundName    = "ground"
	BillboardName = "billboard"
)

// Store owns the two quads of the scene.
type Store struct {
	quads []*Quad
}

// NewStore uploads the billboard and then the ground quad.
func NewStore(dev gfx.Device) *Store {
	billboard := Upload(dev, BillboardName, Billboard())
	ground := Upload(dev, GroundName, Ground())
	return &Store{
		quads: []*Quad{ground, billboard},
	}
}

// Quads returns the quads in draw order: ground first.
func (s *Store) Quads() []*Quad {
	return s.quads
}
