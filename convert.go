// seehuhn.de/go/pixel - planar floating-point image processing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixel

import (
	"image"
	"image/color"
)

// FromImage converts a standard library image into a 3-channel planar float
// image. Samples are normalised to [0, 1]; alpha is discarded.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	im := New(bounds.Dx(), bounds.Dy(), 3)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			im.Set(x, y, 0, float32(r)/0xffff)
			im.Set(x, y, 1, float32(g)/0xffff)
			im.Set(x, y, 2, float32(b)/0xffff)
		}
	}
	return im
}

// ToRGBA converts a 3-channel image to a standard library RGBA image with
// full opacity. Samples are clamped to [0, 1] and quantised to 8 bits.
// ToRGBA panics if im does not have exactly three channels.
func (im *Image) ToRGBA() *image.RGBA {
	if im.Channels != 3 {
		panic("pixel: ToRGBA requires a 3-channel image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			dst.SetRGBA(x, y, color.RGBA{
				R: quantise(im.At(x, y, 0)),
				G: quantise(im.At(x, y, 1)),
				B: quantise(im.At(x, y, 2)),
				A: 0xff,
			})
		}
	}
	return dst
}

// ToGray converts a single-channel image to a standard library grayscale
// image. Samples are clamped to [0, 1] and quantised to 8 bits. ToGray
// panics if im does not have exactly one channel.
func (im *Image) ToGray() *image.Gray {
	if im.Channels != 1 {
		panic("pixel: ToGray requires a 1-channel image")
	}

	dst := image.NewGray(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			dst.SetGray(x, y, color.Gray{Y: quantise(im.At(x, y, 0))})
		}
	}
	return dst
}

func quantise(v float32) uint8 {
	return uint8(clamp(v, 0, 1)*255 + 0.5)
}
