// SPDX-License-Identifier: GPL-2.0-or-later

package ui

import (
	"bytes"

	"github.com/go-theft-auto/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLInputAdapter feeds SDL events into a gui.InputState. Events collected
// between two frames are seen by the next frame only.
type SDLInputAdapter struct {
	input *gui.InputState
	// framebuffer pixels per window coordinate
	scaleX, scaleY float32
}

func NewSDLInputAdapter() *SDLInputAdapter {
	return &SDLInputAdapter{
		input:  gui.NewInputState(),
		scaleX: 1,
		scaleY: 1,
	}
}

// SetScale sets the ratio between the drawable size and the window size.
func (a *SDLInputAdapter) SetScale(fbW, fbH, winW, winH int32) {
	if winW <= 0 || winH <= 0 {
		return
	}
	a.scaleX = float32(fbW) / float32(winW)
	a.scaleY = float32(fbH) / float32(winH)
}

// Input returns the state to pass to gui.Begin.
func (a *SDLInputAdapter) Input() *gui.InputState {
	return a.input
}

// EndFrame clears the single frame events once the GUI consumed them.
func (a *SDLInputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *SDLInputAdapter) HandleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		a.setModifiers(e.Keysym.Mod)
		if k := sdlKeyToGUIKey(e.Keysym.Sym); k != gui.KeyNone {
			a.input.SetKey(k, e.State == sdl.PRESSED)
		}
	case *sdl.TextInputEvent:
		text := e.Text[:]
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		for _, r := range string(text) {
			a.input.AddInputChar(r)
		}
	case *sdl.MouseMotionEvent:
		a.input.SetMousePos(float32(e.X)*a.scaleX, float32(e.Y)*a.scaleY)
	case *sdl.MouseButtonEvent:
		a.input.SetMousePos(float32(e.X)*a.scaleX, float32(e.Y)*a.scaleY)
		if b := sdlMouseButtonToGUI(e.Button); b >= 0 {
			a.input.SetMouseButton(b, e.State == sdl.PRESSED)
		}
	case *sdl.MouseWheelEvent:
		a.input.SetMouseWheel(float32(e.X), float32(e.Y))
	}
}

func (a *SDLInputAdapter) setModifiers(mod uint16) {
	a.input.ModCtrl = mod&sdl.KMOD_CTRL != 0
	a.input.ModShift = mod&sdl.KMOD_SHIFT != 0
	a.input.ModAlt = mod&sdl.KMOD_ALT != 0
	a.input.ModSuper = mod&sdl.KMOD_GUI != 0
}

var sdlGUIKeys = map[sdl.Keycode]gui.Key{
	sdl.K_TAB:       gui.KeyTab,
	sdl.K_LEFT:      gui.KeyLeft,
	sdl.K_RIGHT:     gui.KeyRight,
	sdl.K_UP:        gui.KeyUp,
	sdl.K_DOWN:      gui.KeyDown,
	sdl.K_PAGEUP:    gui.KeyPageUp,
	sdl.K_PAGEDOWN:  gui.KeyPageDown,
	sdl.K_HOME:      gui.KeyHome,
	sdl.K_END:       gui.KeyEnd,
	sdl.K_INSERT:    gui.KeyInsert,
	sdl.K_DELETE:    gui.KeyDelete,
	sdl.K_BACKSPACE: gui.KeyBackspace,
	sdl.K_SPACE:     gui.KeySpace,
	sdl.K_RETURN:    gui.KeyEnter,
	sdl.K_KP_ENTER:  gui.KeyEnter,
	sdl.K_ESCAPE:    gui.KeyEscape,
	sdl.K_a:         gui.KeyA,
	sdl.K_c:         gui.KeyC,
	sdl.K_s:         gui.KeyS,
	sdl.K_t:         gui.KeyT,
	sdl.K_v:         gui.KeyV,
	sdl.K_x:         gui.KeyX,
	sdl.K_y:         gui.KeyY,
	sdl.K_z:         gui.KeyZ,
	sdl.K_F1:        gui.KeyF1,
	sdl.K_F2:        gui.KeyF2,
	sdl.K_F3:        gui.KeyF3,
	sdl.K_F4:        gui.KeyF4,
	sdl.K_F5:        gui.KeyF5,
	sdl.K_F6:        gui.KeyF6,
	sdl.K_F7:        gui.KeyF7,
	sdl.K_F8:        gui.KeyF8,
	sdl.K_F9:        gui.KeyF9,
	sdl.K_F10:       gui.KeyF10,
	sdl.K_F11:       gui.KeyF11,
	sdl.K_F12:       gui.KeyF12,
}

func sdlKeyToGUIKey(k sdl.Keycode) gui.Key {
	if g, ok := sdlGUIKeys[k]; ok {
		return g
	}
	return gui.KeyNone
}

func sdlMouseButtonToGUI(b uint8) gui.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return gui.MouseButtonLeft
	case sdl.BUTTON_RIGHT:
		return gui.MouseButtonRight
	case sdl.BUTTON_MIDDLE:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
