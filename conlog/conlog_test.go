// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"log"
	"testing"
)

func TestPrintf(t *testing.T) {
	defer SetPrintf(log.Printf)
	defer SetSafePrintf(log.Printf)

	var got, gotSafe string
	SetPrintf(func(f string, v ...interface{}) { got += fmt.Sprintf(f, v...) })
	SetSafePrintf(func(f string, v ...interface{}) { gotSafe += fmt.Sprintf(f, v...) })

	Printf("texture %s %dx%d", "ground", 8, 4)
	SafePrintf("debug %v", 1)

	if want := "texture ground 8x4"; got != want {
		t.Errorf("Printf wrote %q, want %q", got, want)
	}
	if want := "debug 1"; gotSafe != want {
		t.Errorf("SafePrintf wrote %q, want %q", gotSafe, want)
	}
}
