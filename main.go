// SPDX-License-Identifier: GPL-2.0-or-later
package main

import (
	"flag"
	"log"
	"runtime"

	cmdl "texlab/commandline"
	"texlab/config"
	"texlab/glh"
	"texlab/image"
	"texlab/lab"
	"texlab/render"
	"texlab/shaders"
	"texlab/texture"
	"texlab/ui"
	"texlab/window"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
)

func main() {
	flag.Parse()
	var err error
	// GL and SDL calls have to come from the main thread.
	mainthread.Run(func() {
		mainthread.Call(func() {
			err = run()
		})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.Load(cmdl.ConfigFile())
	if err != nil {
		return err
	}
	cfg.SetSize(cmdl.Width(), cmdl.Height())
	base := cmdl.BaseDirectory()

	src, err := shaders.Load(config.Resolve(base, cfg.Shaders.Vertex), config.Resolve(base, cfg.Shaders.Fragment))
	if err != nil {
		return err
	}
	ground, err := image.Load(config.Resolve(base, cfg.Textures.Ground))
	if err != nil {
		return err
	}
	billboard, err := image.Load(config.Resolve(base, cfg.Textures.Billboard))
	if err != nil {
		return err
	}
	settings, err := cfg.FilterSettings()
	if err != nil {
		return err
	}
	toggle, err := cfg.ToggleKey()
	if err != nil {
		return err
	}

	w, err := window.Create(window.Options{
		Title:        cfg.Window.Title,
		Width:        int32(cfg.Window.Width),
		Height:       int32(cfg.Window.Height),
		Fullscreen:   cmdl.Fullscreen(),
		SwapInterval: cmdl.SwapInterval(),
		Debug:        cmdl.GLDebug(),
	})
	if err != nil {
		return err
	}
	defer w.Shutdown()
	renderer, version := glh.Info()
	log.Printf("GL renderer %v, version %v", renderer, version)

	prog, err := glh.NewProgram(src.Vertex, src.Fragment)
	if err != nil {
		return errors.Wrap(err, "Couldn't build the scene program")
	}
	defer runtime.KeepAlive(prog)

	dev := glh.Device{}
	maxAnisotropy := texture.MaxAnisotropy(dev)
	state := render.NewAppState()
	state.Filter = settings
	state.Filter.SetAnisotropy(settings.Anisotropy, maxAnisotropy)
	state.CameraPan = cfg.Camera.Pan
	state.ShowUI = cfg.UI.Show

	scene := lab.LoadScene(dev, prog.ID(), ground, billboard)

	fbW, fbH := w.Size()
	guiRenderer, err := ui.NewRenderer(fbW, fbH)
	if err != nil {
		return err
	}
	defer guiRenderer.Delete()
	overlay := ui.NewOverlay(guiRenderer, state, maxAnisotropy)
	winW, winH := w.WindowSize()
	overlay.SetScale(fbW, fbH, winW, winH)

	lab.New(dev, w, overlay, scene, state, toggle).Run()
	return nil
}
