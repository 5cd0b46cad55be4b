// SPDX-License-Identifier: GPL-2.0-or-later

package ui

import (
	"time"
)

const frameSamples = 120

// frameTimer averages the duration of the last frames.
type frameTimer struct {
	samples [frameSamples]time.Duration
	sum     time.Duration
	n       int
	next    int
}

func (t *frameTimer) Add(dt time.Duration) {
	if t.n == frameSamples {
		t.sum -= t.samples[t.next]
	} else {
		t.n++
	}
	t.samples[t.next] = dt
	t.sum += dt
	t.next = (t.next + 1) % frameSamples
}

// Millis returns the average frame time in milliseconds.
func (t *frameTimer) Millis() float32 {
	if t.n == 0 {
		return 0
	}
	return float32(t.sum.Seconds()*1000) / float32(t.n)
}

func (t *frameTimer) FPS() float32 {
	if t.sum <= 0 {
		return 0
	}
	return float32(float64(t.n) / t.sum.Seconds())
}
