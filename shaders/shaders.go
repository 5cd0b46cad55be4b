// SPDX-License-Identifier: GPL-2.0-or-later

// Package shaders provides the GLSL sources of the textured quad program.
package shaders

import (
	"os"

	"github.com/pkg/errors"
)

const (
	// Vertex moves the scene by -cameraPosition and projects it.
	Vertex = `
#version 330
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;
layout (location = 2) in vec2 texCoordIn;
out vec2 texCoord;
out vec3 outColor;
uniform mat4 projectionMatrix;
uniform vec3 cameraPosition;

void main() {
	texCoord = texCoordIn;
	outColor = color;
	gl_Position = projectionMatrix * vec4(position - cameraPosition, 1.0);
}
`

	Fragment = `
#version 330
in vec2 texCoord;
in vec3 outColor;
out vec4 fragmentColor;
uniform sampler2D colortexture;

void main() {
	fragmentColor = texture(colortexture, texCoord.xy);
}
`
)

// Sources holds the source text of one program.
type Sources struct {
	Vertex   string
	Fragment string
}

func Default() Sources {
	return Sources{Vertex: Vertex, Fragment: Fragment}
}

// Load reads the vertex and fragment sources from the given files. An empty
// path selects the built in source.
func Load(vertPath, fragPath string) (Sources, error) {
	s := Default()
	var err error
	if vertPath != "" {
		if s.Vertex, err = read(vertPath); err != nil {
			return Sources{}, err
		}
	}
	if fragPath != "" {
		if s.Fragment, err = read(fragPath); err != nil {
			return Sources{}, err
		}
	}
	return s, nil
}

func read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read shader")
	}
	if len(b) == 0 {
		return "", errors.Errorf("shader %v is empty", path)
	}
	return string(b), nil
}
