// SPDX-License-Identifier: GPL-2.0-or-later

// Package config reads the optional startup configuration of the lab.
// Settings are never written back.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"texlab/filter"
	"texlab/keycode"
	qmath "texlab/math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle     = "OpenGL Lab 2"
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultGround    = "scenes/asphalt.jpg"
	DefaultBillboard = "scenes/explosion.png"
	DefaultToggleKey = "g"
)

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Shaders  ShaderConfig  `yaml:"shaders"`
	Textures TextureConfig `yaml:"textures"`
	Filter   FilterConfig  `yaml:"filter"`
	Camera   CameraConfig  `yaml:"camera"`
	UI       UIConfig      `yaml:"ui"`
}

type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// ShaderConfig names GLSL files. Empty selects the built in sources.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex,omitempty"`
	Fragment string `yaml:"fragment,omitempty"`
}

type TextureConfig struct {
	Ground    string `yaml:"ground,omitempty"`
	Billboard string `yaml:"billboard,omitempty"`
}

// FilterConfig holds mode names like GL_LINEAR or their table index.
type FilterConfig struct {
	Mag        string  `yaml:"mag,omitempty"`
	Min        string  `yaml:"min,omitempty"`
	Anisotropy float32 `yaml:"anisotropy,omitempty"`
}

type CameraConfig struct {
	Pan float32 `yaml:"pan,omitempty"`
}

type UIConfig struct {
	Show      bool   `yaml:"show,omitempty"`
	ToggleKey string `yaml:"toggleKey,omitempty"`
}

func Default() Config {
	var c Config
	c.normalize()
	return c
}

func (c *Config) normalize() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Textures.Ground == "" {
		c.Textures.Ground = DefaultGround
	}
	if c.Textures.Billboard == "" {
		c.Textures.Billboard = DefaultBillboard
	}
	d := filter.Default()
	if c.Filter.Mag == "" {
		c.Filter.Mag = d.Mag.String()
	}
	if c.Filter.Min == "" {
		c.Filter.Min = d.Min.String()
	}
	if c.Filter.Anisotropy == 0 {
		c.Filter.Anisotropy = d.Anisotropy
	}
	c.Camera.Pan = qmath.Clamp(-1, c.Camera.Pan, 1)
	if c.UI.ToggleKey == "" {
		c.UI.ToggleKey = DefaultToggleKey
	}
}

// Load reads the yaml file at path. An empty path yields Default().
// Unknown fields are an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %v", path)
	}
	return c, nil
}

func Parse(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, err
	}
	c.normalize()
	if _, err := c.FilterSettings(); err != nil {
		return Config{}, err
	}
	if _, err := c.ToggleKey(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SetSize overrides the window size with the positive values of w and h.
func (c *Config) SetSize(w, h int) {
	if w > 0 {
		c.Window.Width = w
	}
	if h > 0 {
		c.Window.Height = h
	}
}

// FilterSettings returns the initial sampling settings. The anisotropy is
// not limited to the device maximum yet.
func (c *Config) FilterSettings() (filter.Settings, error) {
	mag, err := filter.ParseMag(c.Filter.Mag)
	if err != nil {
		return filter.Settings{}, err
	}
	minf, err := filter.ParseMin(c.Filter.Min)
	if err != nil {
		return filter.Settings{}, err
	}
	s := filter.Settings{Mag: mag, Min: minf}
	s.SetAnisotropy(c.Filter.Anisotropy, c.Filter.Anisotropy)
	return s, nil
}

func (c *Config) ToggleKey() (keycode.KeyCode, error) {
	k := keycode.StringToKey(c.UI.ToggleKey)
	if k == keycode.Unknown || k == keycode.ESCAPE {
		return keycode.Unknown, errors.Errorf("%q can not toggle the ui", c.UI.ToggleKey)
	}
	return k, nil
}

// Resolve returns path relative to baseDir unless it is absolute.
func Resolve(baseDir, path string) string {
	if baseDir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
