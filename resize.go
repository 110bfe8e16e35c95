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

import "math"

// A SampleFunc returns the sample of an image at a real-valued position
// (x, y) in channel c. Positions between grid points are interpolated;
// positions outside the image use the edge-clamping rules of [Image.At].
//
// SampleFunc is the only axis of variation between the resize strategies:
// [Resize] calls the given SampleFunc once per destination sample.
type SampleFunc func(im *Image, x, y float64, c int) float32

// NearestSample returns the sample of the grid point closest to (x, y),
// rounding half-way values away from zero.
func NearestSample(im *Image, x, y float64, c int) float32 {
	return im.At(int(math.Round(x)), int(math.Round(y)), c)
}

// BilinearSample blends the four grid points surrounding (x, y) linearly in
// both directions. At exact integer coordinates both fractional weights are
// zero and the stored sample is returned unchanged.
func BilinearSample(im *Image, x, y float64, c int) float32 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - math.Floor(x)
	fy := y - math.Floor(y)

	v1 := float64(im.At(x0, y0, c))
	v2 := float64(im.At(x0+1, y0, c))
	v3 := float64(im.At(x0, y0+1, c))
	v4 := float64(im.At(x0+1, y0+1, c))

	q1 := (1-fy)*v1 + fy*v3
	q2 := (1-fy)*v2 + fy*v4

	return float32((1-fx)*q1 + fx*q2)
}

// Resize returns a new image of the given size with the same number of
// channels as im, filling every destination sample via the given SampleFunc.
//
// Destination coordinates are mapped onto the source grid so that the
// centers of the two sample grids align:
//
//	x = ratio*col + (-0.5 + 0.5*ratio)    with ratio = im.Width/width
//
// and analogously for rows. With this mapping, resizing an image to its own
// size reproduces it, and up- or downsampling keeps image content centered
// instead of drifting towards the top-left corner as the naive col*ratio
// mapping would.
//
// Resize panics if width or height is not positive.
func Resize(im *Image, width, height int, sample SampleFunc) *Image {
	if width <= 0 || height <= 0 {
		panic("pixel: Resize requires positive target dimensions")
	}

	dst := New(width, height, im.Channels)

	ratioX := float64(im.Width) / float64(width)
	ratioY := float64(im.Height) / float64(height)
	offsetX := -0.5 + 0.5*ratioX
	offsetY := -0.5 + 0.5*ratioY

	for row := 0; row < height; row++ {
		y := ratioY*float64(row) + offsetY
		for col := 0; col < width; col++ {
			x := ratioX*float64(col) + offsetX
			for c := 0; c < dst.Channels; c++ {
				dst.Set(col, row, c, sample(im, x, y, c))
			}
		}
	}
	return dst
}

// ResizeNearest resizes im to the given size using nearest-neighbour
// sampling.
func ResizeNearest(im *Image, width, height int) *Image {
	return Resize(im, width, height, NearestSample)
}

// ResizeBilinear resizes im to the given size using bilinear interpolation.
func ResizeBilinear(im *Image, width, height int) *Image {
	return Resize(im, width, height, BilinearSample)
}
