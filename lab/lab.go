// SPDX-License-Identifier: GPL-2.0-or-later

// Package lab drives the texture filtering lab: it sets up the scene once
// and then renders frames until the user quits.
package lab

import (
	"image"
	"time"

	"texlab/conlog"
	"texlab/geometry"
	"texlab/gfx"
	"texlab/input"
	"texlab/keycode"
	"texlab/render"
	"texlab/texture"
)

// Platform is the window the lab renders into.
type Platform interface {
	// Size returns the drawable size in pixels.
	Size() (int32, int32)
	Swap()
	PollEvent() (input.Event, bool)
}

// Overlay is the optional GUI drawn above the scene.
type Overlay interface {
	HandleEvent(e input.Event)
	Tick(dt time.Duration)
	Draw(w, h int32)
}

type Scene struct {
	Program gfx.Program
	Quads   []*geometry.Quad
	Bank    *texture.Bank
}

// LoadScene uploads both quads and their textures. The texture of quad i is
// Bank.At(i).
func LoadScene(dev gfx.Device, prog gfx.Program, ground, billboard *image.NRGBA) *Scene {
	store := geometry.NewStore(dev)
	bt := texture.Load(dev, geometry.BillboardName, billboard)
	gt := texture.Load(dev, geometry.GroundName, ground)
	for _, t := range []*texture.Texture{gt, bt} {
		conlog.Printf("Loaded texture %v %dx%d", t.Name(), t.Width, t.Height)
	}
	return &Scene{
		Program: prog,
		Quads:   store.Quads(),
		Bank:    texture.NewBank(gt, bt),
	}
}

type App struct {
	dev      gfx.Device
	platform Platform
	overlay  Overlay
	scene    *Scene
	state    *render.AppState
	toggle   keycode.KeyCode

	quit bool
	now  func() time.Time
	last time.Time
}

// New creates the driver. overlay may be nil.
func New(dev gfx.Device, p Platform, overlay Overlay, scene *Scene, st *render.AppState, toggle keycode.KeyCode) *App {
	return &App{
		dev:      dev,
		platform: p,
		overlay:  overlay,
		scene:    scene,
		state:    st,
		toggle:   toggle,
		now:      time.Now,
	}
}

func (a *App) State() *render.AppState {
	return a.state
}

func (a *App) Quit() bool {
	return a.quit
}

// Frame renders and presents one frame.
func (a *App) Frame() {
	now := a.now()
	if !a.last.IsZero() && a.overlay != nil {
		a.overlay.Tick(now.Sub(a.last))
	}
	a.last = now

	w, h := a.platform.Size()
	a.dev.Enable(gfx.Blend)
	a.dev.BlendFunc(gfx.SrcAlpha, gfx.OneMinusSrcAlpha)
	render.RenderFrame(a.dev, w, h, a.scene.Program, a.state, a.scene.Quads, a.scene.Bank)
	if a.state.ShowUI && a.overlay != nil && w > 0 && h > 0 {
		a.overlay.Draw(w, h)
	}
	a.platform.Swap()
}

// HandleEvents drains the event queue. A window close or a released escape
// key ends the loop, the toggle key shows or hides the overlay.
func (a *App) HandleEvents() {
	for {
		e, ok := a.platform.PollEvent()
		if !ok {
			return
		}
		if a.overlay != nil {
			a.overlay.HandleEvent(e)
		}
		switch {
		case e.Kind == input.Quit, e.IsKeyUp(keycode.ESCAPE):
			a.quit = true
		case e.IsKeyUp(a.toggle):
			a.state.ShowUI = !a.state.ShowUI
		}
	}
}

// Run renders frames until a quit is requested.
func (a *App) Run() {
	for !a.quit {
		a.Frame()
		a.HandleEvents()
	}
}
