// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Load decodes the image file at path into 8 bit RGBA with the first row
// at the top.
func Load(path string) (*image.NRGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := loadTGA(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %v", path)
		}
		return img, nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %v", path)
	}
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, nil
	}
	return imaging.Clone(img), nil
}
