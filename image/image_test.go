// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestLoadPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(2, 1, color.NRGBA{0, 0, 255, 128})
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := imaging.Save(src, path); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%v) = %v", path, err)
	}
	if got := img.Bounds().Size(); got != (image.Point{3, 2}) {
		t.Errorf("size = %v, want (3,2)", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("(0,0) = %v", got)
	}
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{0, 0, 255, 128}) {
		t.Errorf("(2,1) = %v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load of garbage succeeded")
	}
}

func tga(imageType, pixelSize, attributes uint8, w, h uint16, data []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, tgaHeader{
		ImageType:  imageType,
		Width:      w,
		Height:     h,
		PixelSize:  pixelSize,
		Attributes: attributes,
	})
	b.Write(data)
	return b.Bytes()
}

func TestDecodeTGA(t *testing.T) {
	// 2x2, rows stored bottom up, BGR
	bottomUp := []byte{
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	}
	topDown := []byte{
		255, 0, 0, 255, 255, 255,
		0, 0, 255, 0, 255, 0,
	}
	rle := []byte{
		0x81, 0, 0, 255, // two red
		0x01, 255, 0, 0, 255, 255, 255, // blue, white
	}
	tests := []struct {
		name string
		data []byte
	}{
		{"bottom up", tga(tgaTrueColor, 24, 0, 2, 2, bottomUp)},
		{"top down", tga(tgaTrueColor, 24, tgaTopOrigin, 2, 2, topDown)},
		{"rle", tga(tgaTrueColorRLE, 24, 0, 2, 2, rle)},
	}
	for _, test := range tests {
		img, err := decodeTGA(bytes.NewReader(test.data))
		if err != nil {
			t.Errorf("%s: decodeTGA = %v", test.name, err)
			continue
		}
		if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 255}) {
			t.Errorf("%s: (0,0) = %v, want blue", test.name, got)
		}
		if got := img.NRGBAAt(1, 0); got != (color.NRGBA{255, 255, 255, 255}) {
			t.Errorf("%s: (1,0) = %v, want white", test.name, got)
		}
		if got := img.NRGBAAt(0, 1); got != (color.NRGBA{255, 0, 0, 255}) {
			t.Errorf("%s: (0,1) = %v, want red", test.name, got)
		}
	}
}

func TestDecodeTGA32(t *testing.T) {
	data := tga(tgaTrueColor, 32, tgaTopOrigin, 1, 1, []byte{10, 20, 30, 40})
	img, err := decodeTGA(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{30, 20, 10, 40}) {
		t.Errorf("pixel = %v, want {30 20 10 40}", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"colormapped", tga(1, 8, 0, 1, 1, []byte{0})},
		{"16 bit", tga(tgaTrueColor, 16, 0, 1, 1, []byte{0, 0})},
		{"truncated", tga(tgaTrueColor, 24, 0, 2, 2, []byte{1, 2, 3})},
		{"rle overrun", tga(tgaTrueColorRLE, 24, 0, 1, 1, []byte{0x83, 1, 2, 3})},
	}
	for _, test := range tests {
		if _, err := decodeTGA(bytes.NewReader(test.data)); err == nil {
			t.Errorf("%s: decodeTGA succeeded", test.name)
		}
	}
}

func TestLoadTGAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.TGA")
	if err := os.WriteFile(path, tga(tgaTrueColor, 24, 0, 1, 1, []byte{0, 255, 0}), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("pixel = %v", got)
	}
}
