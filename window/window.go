// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the SDL window, its GL context and the event queue.
package window

import (
	"log"
	"unsafe"

	"texlab/conlog"
	"texlab/input"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type Options struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	// SwapInterval is passed to SDL_GL_SetSwapInterval: 0 immediate,
	// 1 vsync, -1 adaptive.
	SwapInterval int
	// Debug enables GL debug output.
	Debug bool
}

type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

type glVersion struct {
	major, minor int
}

// Newest first. 4.1 is the newest core profile some platforms offer.
var glVersions = []glVersion{{4, 6}, {4, 1}}

// Create initializes SDL video, opens the window and makes a core profile
// GL context current on the calling thread.
func Create(o Options) (*Window, error) {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	log.Printf("Found SDL version %d.%d.%d\n", v.Major, v.Minor, v.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "Couldn't init SDL video")
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if o.Debug {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow(o.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, o.Width, o.Height, flags)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "Couldn't create window")
	}
	w := &Window{window: window}

	for _, gv := range glVersions {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, gv.major)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, gv.minor)
		w.context, err = window.GLCreateContext()
		if err == nil {
			break
		}
		log.Printf("No GL %d.%d core context: %v", gv.major, gv.minor, err)
	}
	if w.context == nil {
		w.Shutdown()
		return nil, errors.Wrap(err, "Couldn't create GL context")
	}
	// Initialize Glow
	if err := gl.Init(); err != nil {
		w.Shutdown()
		return nil, errors.Wrap(err, "Couldn't init gl")
	}
	if err := sdl.GLSetSwapInterval(o.SwapInterval); err != nil {
		log.Printf("Couldn't set swap interval %d: %v", o.SwapInterval, err)
	}
	if o.Debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}
	return w, nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Panicf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	} else {
		conlog.SafePrintf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

// SDL returns the underlying window for the GUI input adapter.
func (w *Window) SDL() *sdl.Window {
	return w.window
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	return w.window.GLGetDrawableSize()
}

// WindowSize returns the size in screen coordinates, which differs from Size
// on high dpi displays.
func (w *Window) WindowSize() (int32, int32) {
	return w.window.GetSize()
}

func (w *Window) Minimized() bool {
	return w.window.GetFlags()&sdl.WINDOW_MINIMIZED != 0
}

func (w *Window) Swap() {
	if w.Minimized() {
		return
	}
	w.window.GLSwap()
}

// PollEvent returns the next pending event. ok is false if the queue is
// empty.
func (w *Window) PollEvent() (e input.Event, ok bool) {
	event := sdl.PollEvent()
	if event == nil {
		return input.Event{}, false
	}
	return convertEvent(event), true
}

func convertEvent(event sdl.Event) input.Event {
	e := input.Event{Raw: event}
	switch t := event.(type) {
	case *sdl.QuitEvent:
		e.Kind = input.Quit
	case *sdl.KeyboardEvent:
		e.Kind = input.KeyUp
		if t.State == sdl.PRESSED {
			e.Kind = input.KeyDown
		}
		e.Key = sdlKeyToKeyCode(t.Keysym.Sym)
	}
	return e
}

func (w *Window) Shutdown() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}
