// SPDX-License-Identifier: GPL-2.0-or-later

package ui

import (
	"testing"

	"github.com/go-theft-auto/gui"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSDLInputKeys(t *testing.T) {
	a := NewSDLInputAdapter()
	a.HandleEvent(&sdl.KeyboardEvent{
		State:  sdl.PRESSED,
		Keysym: sdl.Keysym{Sym: sdl.K_TAB, Mod: sdl.KMOD_LCTRL},
	})
	in := a.Input()
	if !in.KeyDown(gui.KeyTab) || !in.KeyPressed(gui.KeyTab) {
		t.Errorf("tab not down")
	}
	if !in.ModCtrl || in.ModShift {
		t.Errorf("modifiers ctrl %v shift %v", in.ModCtrl, in.ModShift)
	}
	a.EndFrame()
	if in.KeyPressed(gui.KeyTab) || !in.KeyDown(gui.KeyTab) {
		t.Errorf("EndFrame: pressed %v down %v", in.KeyPressed(gui.KeyTab), in.KeyDown(gui.KeyTab))
	}
	a.HandleEvent(&sdl.KeyboardEvent{
		State:  sdl.RELEASED,
		Keysym: sdl.Keysym{Sym: sdl.K_TAB},
	})
	if in.KeyDown(gui.KeyTab) {
		t.Errorf("tab still down")
	}
}

func TestSDLInputMouse(t *testing.T) {
	a := NewSDLInputAdapter()
	a.SetScale(1600, 1200, 800, 600)
	a.HandleEvent(&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.PRESSED, X: 10, Y: 5})
	in := a.Input()
	if in.MouseX != 20 || in.MouseY != 10 {
		t.Errorf("mouse = %v,%v, want 20,10", in.MouseX, in.MouseY)
	}
	if !in.MouseDown(gui.MouseButtonLeft) || !in.MouseClicked(gui.MouseButtonLeft) {
		t.Errorf("left button not clicked")
	}
	a.HandleEvent(&sdl.MouseWheelEvent{Y: -1})
	if in.MouseWheelY != -1 {
		t.Errorf("wheel = %v, want -1", in.MouseWheelY)
	}
}

func TestSDLInputText(t *testing.T) {
	a := NewSDLInputAdapter()
	e := &sdl.TextInputEvent{}
	copy(e.Text[:], "gä")
	a.HandleEvent(e)
	if got := string(a.Input().InputChars); got != "gä" {
		t.Errorf("chars = %q, want %q", got, "gä")
	}
}

func TestSDLKeyToGUIKey(t *testing.T) {
	tests := []struct {
		in   sdl.Keycode
		want gui.Key
	}{
		{sdl.K_ESCAPE, gui.KeyEscape},
		{sdl.K_RETURN, gui.KeyEnter},
		{sdl.K_a, gui.KeyA},
		{sdl.K_g, gui.KeyNone},
	}
	for _, test := range tests {
		if got := sdlKeyToGUIKey(test.in); got != test.want {
			t.Errorf("sdlKeyToGUIKey(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}
