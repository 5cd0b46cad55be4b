// SPDX-License-Identifier: GPL-2.0-or-later

package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultUniforms(t *testing.T) {
	for _, name := range []string{"projectionMatrix", "cameraPosition"} {
		if !strings.Contains(Vertex, "uniform") || !strings.Contains(Vertex, name) {
			t.Errorf("vertex source does not declare %v", name)
		}
	}
	for i, attr := range []string{"position", "color", "texCoordIn"} {
		decl := "layout (location = " + string(rune('0'+i)) + ") in "
		line := ""
		for _, l := range strings.Split(Vertex, "\n") {
			if strings.HasPrefix(l, decl) {
				line = l
			}
		}
		if !strings.HasSuffix(line, " "+attr+";") {
			t.Errorf("location %d = %q, want %v", i, line, attr)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "custom.frag")
	if err := os.WriteFile(frag, []byte("#version 330\nvoid main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.vert")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		vert     string
		frag     string
		wantVert string
		wantFrag string
		wantErr  bool
	}{
		{"defaults", "", "", Vertex, Fragment, false},
		{"custom fragment", "", frag, Vertex, "#version 330\nvoid main() {}\n", false},
		{"missing", filepath.Join(dir, "missing.vert"), "", "", "", true},
		{"empty", empty, "", "", "", true},
	}
	for _, test := range tests {
		s, err := Load(test.vert, test.frag)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Load err = %v, wantErr %v", test.name, err, test.wantErr)
			continue
		}
		if s.Vertex != test.wantVert || s.Fragment != test.wantFrag {
			t.Errorf("%s: Load = %+v", test.name, s)
		}
	}
}
