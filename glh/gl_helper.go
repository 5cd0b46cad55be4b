// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"runtime"
	"strings"

	"texlab/gfx"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
)

type Program struct {
	prog uint32
}

// NewProgram compiles and links a program from GLSL sources. The sources
// do not need to be NUL terminated.
func NewProgram(vertex, fragment string) (*Program, error) {
	vert, err := GetShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	frag, err := GetShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, errors.Wrap(err, "fragment shader")
	}
	p := &Program{
		prog: gl.CreateProgram(),
	}
	gl.AttachShader(p.prog, vert)
	gl.AttachShader(p.prog, frag)
	gl.LinkProgram(p.prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(p.prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(p.prog)
		return nil, errors.Errorf("Failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	runtime.AddCleanup(p, deleteProgram, p.prog)
	return p, nil
}

func deleteProgram(p uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(p)
	})
}

func (p *Program) ID() gfx.Program {
	return gfx.Program(p.prog)
}

func GetShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	length := int32(len(src))
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csource, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(shader, 1, csource, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("Failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// Info returns the renderer and version strings of the current context.
func Info() (renderer, version string) {
	return gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}
