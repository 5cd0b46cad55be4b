// SPDX-License-Identifier: GPL-2.0-or-later
package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	fullscreen bool
	glDebug    bool

	vsync = boolInt{true, 1}

	height int
	width  int

	basedir    string
	configFile string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = v != 0
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&fullscreen, "f", false, "")
	flag.BoolVar(&fullscreen, "fullscreen", false, "")
	flag.BoolVar(&glDebug, "gldebug", false, "log opengl debug output")

	flag.Var(&vsync, "vsync", "wait for vertical sync, -vsync=-1 for adaptive sync")

	flag.IntVar(&height, "height", -1, "window height, negative is unset")
	flag.IntVar(&width, "width", -1, "window width, negative is unset")

	flag.StringVar(&basedir, "basedir", "", "directory relative asset paths are resolved against")
	flag.StringVar(&configFile, "config", "", "yaml scene configuration")
}

func BaseDirectory() string {
	return basedir
}

func ConfigFile() string {
	return configFile
}

func Height() int {
	return height
}

func Width() int {
	return width
}

func Fullscreen() bool {
	return fullscreen
}

func GLDebug() bool {
	return glDebug
}

// SwapInterval returns the value for SDL_GL_SetSwapInterval.
func SwapInterval() int {
	return swapInterval(vsync)
}

func swapInterval(b boolInt) int {
	if !b.set {
		return 0
	}
	if b.num < 0 {
		return -1
	}
	return 1
}
