// SPDX-License-Identifier: GPL-2.0-or-later

// Package ui is the debug overlay of the lab, drawn with an immediate mode
// GUI on top of the scene.
package ui

import (
	"log"
	"time"

	"texlab/input"
	"texlab/render"

	gl41 "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-theft-auto/gui"
	"github.com/go-theft-auto/gui/backend/opengl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// NewRenderer creates the GL renderer of the GUI for the current context.
// The GUI draws through its own GL bindings which need their own Init.
func NewRenderer(width, height int32) (*opengl.Renderer, error) {
	if err := gl41.Init(); err != nil {
		return nil, errors.Wrap(err, "Couldn't init gui gl")
	}
	r, err := opengl.NewRenderer(int(width), int(height))
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't create gui renderer")
	}
	return r, nil
}

type Overlay struct {
	gui    *gui.GUI
	input  *SDLInputAdapter
	panel  *Panel
	width  int32
	height int32
}

func NewOverlay(r gui.Renderer, st *render.AppState, maxAnisotropy float32) *Overlay {
	return &Overlay{
		gui:   gui.New(r, gui.WithStyle(gui.DefaultStyle())),
		input: NewSDLInputAdapter(),
		panel: NewPanel(st, maxAnisotropy),
	}
}

// SetScale forwards the drawable to window size ratio to the input adapter.
func (o *Overlay) SetScale(fbW, fbH, winW, winH int32) {
	o.input.SetScale(fbW, fbH, winW, winH)
}

func (o *Overlay) HandleEvent(e input.Event) {
	if ev, ok := e.Raw.(sdl.Event); ok {
		o.input.HandleEvent(ev)
	}
}

// Tick records the duration of the last frame.
func (o *Overlay) Tick(dt time.Duration) {
	o.panel.timer.Add(dt)
}

// Draw runs one GUI frame on a w x h framebuffer. A failed frame is only
// logged.
func (o *Overlay) Draw(w, h int32) {
	if w != o.width || h != o.height {
		o.width, o.height = w, h
		o.gui.Resize(int(w), int(h))
	}
	ctx := o.gui.Begin(o.input.Input(), gui.Vec2{X: float32(w), Y: float32(h)}, o.panel.timer.Millis()/1000)
	o.panel.Draw(ctx)
	err := o.gui.End()
	o.input.EndFrame()
	if err != nil {
		log.Printf("gui frame failed: %v", err)
	}
}
