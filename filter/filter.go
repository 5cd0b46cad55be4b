// SPDX-License-Identifier: GPL-2.0-or-later

// Package filter holds the user selectable texture sampling settings and
// the tables mapping them onto GL filter enums.
package filter

import (
	"strconv"
	"strings"

	"texlab/gfx"
	qmath "texlab/math"

	"github.com/pkg/errors"
)

type MagMode int

const (
	MagNearest MagMode = iota
	MagLinear
)

type MinMode int

const (
	MinNearest MinMode = iota
	MinLinear
	MinNearestMipmapNearest
	MinNearestMipmapLinear
	MinLinearMipmapNearest
	MinLinearMipmapLinear
)

type glMode struct {
	filter gfx.Enum
	name   string
}

var (
	magModes = [...]glMode{
		{gfx.Nearest, "GL_NEAREST"},
		{gfx.Linear, "GL_LINEAR"},
	}
	minModes = [...]glMode{
		{gfx.Nearest, "GL_NEAREST"},
		{gfx.Linear, "GL_LINEAR"},
		{gfx.NearestMipmapNearest, "GL_NEAREST_MIPMAP_NEAREST"},
		{gfx.NearestMipmapLinear, "GL_NEAREST_MIPMAP_LINEAR"},
		{gfx.LinearMipmapNearest, "GL_LINEAR_MIPMAP_NEAREST"},
		{gfx.LinearMipmapLinear, "GL_LINEAR_MIPMAP_LINEAR"},
	}
)

// GL returns the TEXTURE_MAG_FILTER value for m. ok is false if m is not
// one of the table entries.
func (m MagMode) GL() (f gfx.Enum, ok bool) {
	if m < 0 || int(m) >= len(magModes) {
		return 0, false
	}
	return magModes[m].filter, true
}

func (m MagMode) String() string {
	if m < 0 || int(m) >= len(magModes) {
		return "MagMode(" + strconv.Itoa(int(m)) + ")"
	}
	return magModes[m].name
}

// GL returns the TEXTURE_MIN_FILTER value for m. ok is false if m is not
// one of the table entries.
func (m MinMode) GL() (f gfx.Enum, ok bool) {
	if m < 0 || int(m) >= len(minModes) {
		return 0, false
	}
	return minModes[m].filter, true
}

func (m MinMode) String() string {
	if m < 0 || int(m) >= len(minModes) {
		return "MinMode(" + strconv.Itoa(int(m)) + ")"
	}
	return minModes[m].name
}

// Mipmapped reports whether sampling with m reads the mipmap chain.
func (m MinMode) Mipmapped() bool {
	return m >= MinNearestMipmapNearest && m <= MinLinearMipmapLinear
}

func names(ms []glMode) []string {
	r := make([]string, len(ms))
	for i, m := range ms {
		r[i] = m.name
	}
	return r
}

// MagNames returns the mode names indexed by MagMode.
func MagNames() []string {
	return names(magModes[:])
}

// MinNames returns the mode names indexed by MinMode.
func MinNames() []string {
	return names(minModes[:])
}

func parse(ms []glMode, s string) (int, bool) {
	for i, m := range ms {
		if m.name == s {
			return i, true
		}
	}
	ls := strings.ToLower(s)
	for i, m := range ms {
		if strings.ToLower(m.name) == ls {
			return i, true
		}
	}
	i, err := strconv.Atoi(s)
	if err == nil && i >= 0 && i < len(ms) {
		return i, true
	}
	return 0, false
}

// ParseMag accepts a mode name like GL_LINEAR in any case or its ordinal.
func ParseMag(s string) (MagMode, error) {
	i, ok := parse(magModes[:], strings.TrimSpace(s))
	if !ok {
		return 0, errors.Errorf("%q is not a valid magnification mode", s)
	}
	return MagMode(i), nil
}

// ParseMin accepts a mode name like GL_LINEAR_MIPMAP_LINEAR in any case or
// its ordinal.
func ParseMin(s string) (MinMode, error) {
	i, ok := parse(minModes[:], strings.TrimSpace(s))
	if !ok {
		return 0, errors.Errorf("%q is not a valid minification mode", s)
	}
	return MinMode(i), nil
}

const (
	MinAnisotropy     = 1
	DefaultAnisotropy = 16
)

type Settings struct {
	Mag        MagMode
	Min        MinMode
	Anisotropy float32
}

func Default() Settings {
	return Settings{
		Mag:        MagLinear,
		Min:        MinLinearMipmapLinear,
		Anisotropy: DefaultAnisotropy,
	}
}

// SetAnisotropy stores v limited to [1, maximum].
func (s *Settings) SetAnisotropy(v, maximum float32) {
	s.Anisotropy = qmath.Clamp(MinAnisotropy, v, max(maximum, MinAnisotropy))
}
