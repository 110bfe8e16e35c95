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

// Package pixel processes images stored as planar floating-point sample
// buffers.
//
// An [Image] holds width*height*channels float32 samples in channel-major
// order: all samples of channel 0 first, then channel 1, and so on. Within a
// channel, samples are stored row by row. For standard RGB images the three
// channels are red, green and blue, nominally normalised to [0, 1].
//
// # Pixel Access
//
// All operations in this package read and write samples through [Image.At]
// and [Image.Set]. Reads clamp out-of-range coordinates to the nearest valid
// sample, so interpolation code can query one sample past the image border
// without special cases. Writes outside the image are silently dropped.
//
// # Transforms and Colour Conversion
//
// [Grayscale] converts an RGB image to a single luma channel, [ShiftChannel]
// and [Clamp] adjust sample values in place, and [RGBToHSV] / [HSVToRGB]
// convert between the RGB and HSV colour spaces:
//
//	hsv := im.Clone()
//	pixel.RGBToHSV(hsv)
//	pixel.ShiftChannel(hsv, 1, 0.2)  // boost saturation
//	pixel.Clamp(hsv)
//	pixel.HSVToRGB(hsv)
//
// # Resizing
//
// [Resize] maps the destination grid onto the source grid so that sample
// centers align, and fills every destination sample using a [SampleFunc].
// [ResizeNearest] and [ResizeBilinear] are the two provided strategies:
//
//	small := pixel.ResizeBilinear(im, im.Width/2, im.Height/2)
package pixel

import "golang.org/x/exp/constraints"

// Image is an image stored as a flat buffer of float32 samples in planar,
// channel-major order. The sample at column x, row y in channel c is
// Pix[c*Width*Height + y*Width + x].
//
// The buffer length is always exactly Width*Height*Channels. HSV images use
// the same representation, with channels 0-2 holding hue, saturation and
// value; the interpretation is up to the caller.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []float32
}

// New allocates an image of the given size with all samples set to zero.
// It panics if any dimension is negative.
func New(width, height, channels int) *Image {
	if width < 0 || height < 0 || channels < 0 {
		panic("pixel: negative image dimension")
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float32, width*height*channels),
	}
}

// Clone returns a deep copy of the image. Mutating the copy does not affect
// the original, and vice versa.
func (im *Image) Clone() *Image {
	dst := New(im.Width, im.Height, im.Channels)
	copy(dst.Pix, im.Pix)
	return dst
}

// At returns the sample at column x, row y in channel c. Coordinates are
// clamped to the valid range independently per axis, so At never fails: for
// example x < 0 reads column 0, and x >= Width reads column Width-1.
func (im *Image) At(x, y, c int) float32 {
	x = clamp(x, 0, im.Width-1)
	y = clamp(y, 0, im.Height-1)
	c = clamp(c, 0, im.Channels-1)
	return im.Pix[im.offset(x, y, c)]
}

// Set stores v at column x, row y in channel c. If any coordinate is outside
// the image, the write is silently dropped.
func (im *Image) Set(x, y, c int, v float32) {
	if x < 0 || x >= im.Width ||
		y < 0 || y >= im.Height ||
		c < 0 || c >= im.Channels {
		return
	}
	im.Pix[im.offset(x, y, c)] = v
}

func (im *Image) offset(x, y, c int) int {
	return c*im.Width*im.Height + y*im.Width + x
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
