// SPDX-License-Identifier: GPL-2.0-or-later

// Package math holds small numeric helpers shared by the settings code.
package math

type Number interface {
	int64 | float64 | float32 | int
}

// Clamp returns val limited to [lo, hi]. lo wins if the range is empty.
func Clamp[K Number](lo, val, hi K) K {
	if lo > val {
		return lo
	} else if hi < val {
		return max(hi, lo)
	}
	return val
}
