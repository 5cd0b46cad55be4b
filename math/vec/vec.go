// SPDX-License-Identifier: GPL-2.0-or-later

package vec

type Vec3 struct {
	X, Y, Z float32
}

type Vec2 struct {
	S, T float32
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec2) Array() [2]float32 {
	return [2]float32{v.S, v.T}
}

// Flatten3 packs vs as x0,y0,z0,x1,... for a vertex buffer.
func Flatten3(vs []Vec3) []float32 {
	r := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		r = append(r, v.X, v.Y, v.Z)
	}
	return r
}

// Flatten2 packs vs as s0,t0,s1,... for a vertex buffer.
func Flatten2(vs []Vec2) []float32 {
	r := make([]float32, 0, len(vs)*2)
	for _, v := range vs {
		r = append(r, v.S, v.T)
	}
	return r
}
