// SPDX-License-Identifier: GPL-2.0-or-later

package keycode

import (
	"testing"
)

func TestKeyToString(t *testing.T) {
	tests := []struct {
		key KeyCode
		str string
	}{
		{TAB, "TAB"},
		{PAUSE, "PAUSE"},
		{0x30, "0"},
		{0x3B, ";"},
		{0x41, "A"},
		{0x60, "`"},
		{0x61, "a"},
		{0x7E, "~"},
		{0x7F, "BACKSPACE"},
		{0x80, "UPARROW"},
	}
	for _, test := range tests {
		if got := KeyToString(test.key); got != test.str {
			t.Errorf("KeyToString(%d) = %s; want %s", test.key, got, test.str)
		}
	}
}

func TestStringToKey(t *testing.T) {
	tests := []struct {
		key KeyCode
		str string
	}{
		{TAB, "TAB"},
		{PAUSE, "PAUSE"},
		{0x30, "0"},
		{0x3B, ";"},
		{0x41, "A"},
		{0x60, "`"},
		{0x61, "a"},
		{0x7E, "~"},
		{0x7F, "BACKSPACE"},
		{0x80, "UPARROW"},
	}
	for _, test := range tests {
		if got := StringToKey(test.str); got != test.key {
			t.Errorf("StringToKey(%s) = %d; want %d", test.str, got, test.key)
		}
	}
}

func TestUnknownKeys(t *testing.T) {
	if got := StringToKey(""); got != Unknown {
		t.Errorf("StringToKey(\"\") = %d; want %d", got, Unknown)
	}
	if got := StringToKey("NOPE"); got != Unknown {
		t.Errorf("StringToKey(NOPE) = %d; want %d", got, Unknown)
	}
	if got := KeyToString(Unknown); got != "<KEY NOT FOUND>" {
		t.Errorf("KeyToString(Unknown) = %s", got)
	}
	if got := KeyToString(200); got != "<UNKNOWN KEYNUM>" {
		t.Errorf("KeyToString(200) = %s", got)
	}
}
