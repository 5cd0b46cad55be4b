// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	kc "texlab/keycode"

	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeys = map[sdl.Keycode]kc.KeyCode{
	sdl.K_TAB:       kc.TAB,
	sdl.K_RETURN:    kc.ENTER,
	sdl.K_RETURN2:   kc.ENTER,
	sdl.K_ESCAPE:    kc.ESCAPE,
	sdl.K_SPACE:     kc.SPACE,
	sdl.K_BACKSPACE: kc.BACKSPACE,

	sdl.K_UP:    kc.UPARROW,
	sdl.K_DOWN:  kc.DOWNARROW,
	sdl.K_LEFT:  kc.LEFTARROW,
	sdl.K_RIGHT: kc.RIGHTARROW,

	sdl.K_LALT:   kc.ALT,
	sdl.K_RALT:   kc.ALT,
	sdl.K_LCTRL:  kc.CTRL,
	sdl.K_RCTRL:  kc.CTRL,
	sdl.K_LSHIFT: kc.SHIFT,
	sdl.K_RSHIFT: kc.SHIFT,

	sdl.K_F1:  kc.F1,
	sdl.K_F2:  kc.F2,
	sdl.K_F3:  kc.F3,
	sdl.K_F4:  kc.F4,
	sdl.K_F5:  kc.F5,
	sdl.K_F6:  kc.F6,
	sdl.K_F7:  kc.F7,
	sdl.K_F8:  kc.F8,
	sdl.K_F9:  kc.F9,
	sdl.K_F10: kc.F10,
	sdl.K_F11: kc.F11,
	sdl.K_F12: kc.F12,

	sdl.K_INSERT:   kc.INS,
	sdl.K_DELETE:   kc.DEL,
	sdl.K_PAGEDOWN: kc.PGDN,
	sdl.K_PAGEUP:   kc.PGUP,
	sdl.K_HOME:     kc.HOME,
	sdl.K_END:      kc.END,
	sdl.K_KP_ENTER: kc.KP_ENTER,
	sdl.K_PAUSE:    kc.PAUSE,
}

// sdlKeyToKeyCode maps the layout dependent key. Printable keys are their
// ASCII value, like the key names in the configuration.
func sdlKeyToKeyCode(k sdl.Keycode) kc.KeyCode {
	if k > ' ' && k < 127 {
		return kc.KeyCode(k)
	}
	if c, ok := sdlKeys[k]; ok {
		return c
	}
	return kc.Unknown
}
