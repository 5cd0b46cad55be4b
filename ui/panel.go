// SPDX-License-Identifier: GPL-2.0-or-later

package ui

import (
	"fmt"

	"texlab/filter"
	"texlab/render"

	"github.com/go-theft-auto/gui"
)

const (
	panelTitle = "Debug"
	panelWidth = 420

	labelMag        = "Magnification"
	labelMin        = "Minification"
	labelAnisotropy = "Anisotropic filtering"
	labelCamera     = "Camera Panning"

	anisotropyFormat = "Number of samples: %.0f"
	cameraMin        = -1
	cameraMax        = 1
)

// Panel shows the sampling settings and the camera pan of an AppState.
type Panel struct {
	state         *render.AppState
	maxAnisotropy float32
	timer         frameTimer

	magNames []string
	minNames []string
}

func NewPanel(st *render.AppState, maxAnisotropy float32) *Panel {
	return &Panel{
		state:         st,
		maxAnisotropy: max(maxAnisotropy, filter.MinAnisotropy),
		magNames:      filter.MagNames(),
		minNames:      filter.MinNames(),
	}
}

// radio runs a radio group over a mode index. The mode only changes if the
// user picks an entry, so a value outside of the table survives.
func radio(ctx *gui.Context, label string, mode *int, items []string) {
	sel := *mode
	if ctx.RadioGroup(label, &sel, items) {
		*mode = sel
	}
}

func (p *Panel) Draw(ctx *gui.Context) {
	f := &p.state.Filter
	ctx.Panel(panelTitle, gui.Width(panelWidth))(func() {
		mag := int(f.Mag)
		radio(ctx, labelMag, &mag, p.magNames)
		f.Mag = filter.MagMode(mag)

		minf := int(f.Min)
		radio(ctx, labelMin, &minf, p.minNames)
		f.Min = filter.MinMode(minf)

		ctx.SliderFloat(labelAnisotropy, &f.Anisotropy, filter.MinAnisotropy, p.maxAnisotropy,
			gui.WithFormat(anisotropyFormat), gui.WithStep(1))
		f.SetAnisotropy(f.Anisotropy, p.maxAnisotropy)

		ctx.Spacing(20)

		ctx.SliderFloat(labelCamera, &p.state.CameraPan, cameraMin, cameraMax)

		ctx.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", p.timer.Millis(), p.timer.FPS()))
	})
}
