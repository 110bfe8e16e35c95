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

// Grayscale converts a 3-channel RGB image to a new single-channel image
// using the BT.601 luma weights:
//
//	Y' = 0.299 R' + 0.587 G' + 0.114 B'
//
// The input image is not modified. Grayscale panics if im does not have
// exactly three channels.
func Grayscale(im *Image) *Image {
	if im.Channels != 3 {
		panic("pixel: Grayscale requires a 3-channel image")
	}

	gray := New(im.Width, im.Height, 1)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r := im.At(x, y, 0)
			g := im.At(x, y, 1)
			b := im.At(x, y, 2)
			gray.Set(x, y, 0, 0.299*r+0.587*g+0.114*b)
		}
	}
	return gray
}

// ShiftChannel adds v to every sample of channel c, in place. The result is
// not clamped; callers which need samples to stay within [0, 1] must call
// [Clamp] afterwards.
func ShiftChannel(im *Image, c int, v float32) {
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			im.Set(x, y, c, im.At(x, y, c)+v)
		}
	}
}

// Clamp rewrites every sample of the image into the range [0, 1], in place.
// Samples greater than 1 become 1 and samples less than 0 become 0.
func Clamp(im *Image) {
	for c := 0; c < im.Channels; c++ {
		for y := 0; y < im.Height; y++ {
			for x := 0; x < im.Width; x++ {
				im.Set(x, y, c, clamp(im.At(x, y, c), 0, 1))
			}
		}
	}
}
