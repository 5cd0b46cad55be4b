// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bufio"
	"encoding/binary"
	"image"
	"io"
	"os"

	"github.com/pkg/errors"
)

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
	// Attribute bit set if the first stored row is the top one.
	tgaTopOrigin = 0x20
)

func loadTGA(name string) (*image.NRGBA, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeTGA(bufio.NewReader(f))
}

func decodeTGA(r io.Reader) (*image.NRGBA, error) {
	var header tgaHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "invalid tga header")
	}
	if header.ImageType != tgaTrueColor && header.ImageType != tgaTrueColorRLE {
		return nil, errors.Errorf("tga image type %d is not 2 or 10", header.ImageType)
	}
	if header.ColormapType != 0 || (header.PixelSize != 32 && header.PixelSize != 24) {
		return nil, errors.New("tga is not 24bit or 32bit")
	}
	// skip Image ID
	if _, err := io.CopyN(io.Discard, r, int64(header.IDLength)); err != nil {
		return nil, errors.Wrap(err, "truncated tga image id")
	}

	width, height := int(header.Width), int(header.Height)
	bpp := int(header.PixelSize) / 8
	raw := make([]byte, width*height*bpp)
	if header.ImageType == tgaTrueColor {
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, errors.Wrap(err, "not enough pixels")
		}
	} else if err := readRLE(r, raw, bpp); err != nil {
		return nil, err
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := y
		if header.Attributes&tgaTopOrigin == 0 {
			row = height - 1 - y
		}
		src := raw[row*width*bpp:]
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			// stored as BGR(A)
			dst[x*4+0] = src[x*bpp+2]
			dst[x*4+1] = src[x*bpp+1]
			dst[x*4+2] = src[x*bpp+0]
			if bpp == 4 {
				dst[x*4+3] = src[x*bpp+3]
			} else {
				dst[x*4+3] = 255
			}
		}
	}
	return nrgba, nil
}

// readRLE fills raw with the run length encoded pixel packets of r.
func readRLE(r io.Reader, raw []byte, bpp int) error {
	var packet [1]byte
	pixel := make([]byte, bpp)
	for p := 0; p < len(raw); {
		if _, err := io.ReadFull(r, packet[:]); err != nil {
			return errors.Wrap(err, "truncated tga packet")
		}
		n := int(packet[0]&0x7f) + 1
		if p+n*bpp > len(raw) {
			return errors.New("tga packet overruns image")
		}
		if packet[0]&0x80 == 0 {
			if _, err := io.ReadFull(r, raw[p:p+n*bpp]); err != nil {
				return errors.Wrap(err, "truncated tga raw packet")
			}
			p += n * bpp
			continue
		}
		if _, err := io.ReadFull(r, pixel); err != nil {
			return errors.Wrap(err, "truncated tga run packet")
		}
		for ; n > 0; n-- {
			p += copy(raw[p:], pixel)
		}
	}
	return nil
}
