// SPDX-License-Identifier: GPL-2.0-or-later

package mat

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix is a 4x4 matrix in row major order.
type Matrix struct {
	m [16]float32
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix:\n%v %v %v %v\n%v %v %v %v\n%v %v %v %v\n%v %v %v %v\n",
		m.m[0], m.m[1], m.m[2], m.m[3],
		m.m[4], m.m[5], m.m[6], m.m[7],
		m.m[8], m.m[9], m.m[10], m.m[11],
		m.m[12], m.m[13], m.m[14], m.m[15],
	)
}

func deg2rad(deg float32) float32 {
	return deg / 180 * math32.Pi
}

// Perspective returns a right handed projection mapping the view frustum
// into the [-1,1] clip cube. fovy is the vertical field of view in degree.
func Perspective(fovy, aspect, near, far float32) *Matrix {
	f := 1 / math32.Tan(deg2rad(fovy)/2)
	// f/aspect, 0, 0, 0
	// 0, f, 0, 0
	// 0, 0, (far+near)/(near-far), 2*far*near/(near-far)
	// 0, 0, -1, 0
	return &Matrix{
		m: [16]float32{
			f / aspect, 0, 0, 0,
			0, f, 0, 0,
			0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
			0, 0, -1, 0,
		},
	}
}

// Data returns the row major elements. Uploading them needs transpose set
// to true as opengl uses column major order.
func (m *Matrix) Data() *[16]float32 {
	return &m.m
}

// At returns the element in row r and column c.
func (m *Matrix) At(r, c int) float32 {
	return m.m[r*4+c]
}
