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

// RGBToHSV converts a 3-channel image from RGB to HSV, in place. After the
// call, channels 0-2 hold hue, saturation and value. Hue is normalised to
// [0, 1) rather than degrees.
//
// The value of a pixel is the largest of its RGB components, and saturation
// is the ratio between the chroma (max minus min) and the value. For black
// pixels the saturation is 0, and for achromatic pixels (R = G = B) the hue
// is 0, since it is undefined there.
//
// RGBToHSV panics if im does not have exactly three channels.
func RGBToHSV(im *Image) {
	if im.Channels != 3 {
		panic("pixel: RGBToHSV requires a 3-channel image")
	}

	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r := im.At(x, y, 0)
			g := im.At(x, y, 1)
			b := im.At(x, y, 2)

			v := max(r, g, b)
			diff := v - min(r, g, b)

			var s float32
			if v > 0 {
				s = diff / v
			}

			// select the hue sector from the dominant component
			var h float32
			if diff != 0 {
				switch v {
				case r:
					h = (g - b) / diff
				case g:
					h = (b-r)/diff + 2
				default:
					h = (r-g)/diff + 4
				}
				if h < 0 {
					h = h/6 + 1
				} else {
					h = h / 6
				}
			}

			im.Set(x, y, 0, h)
			im.Set(x, y, 1, s)
			im.Set(x, y, 2, v)
		}
	}
}

// HSVToRGB converts a 3-channel image from HSV back to RGB, in place. It is
// the inverse of [RGBToHSV]: the chroma C = value*saturation and the hue
// select a point on one of the six faces of the HSV hexagon, and the
// remainder value-C is added to all three components.
//
// A hue outside [0, 1] cannot be produced by [RGBToHSV]; such pixels keep
// only the achromatic offset value-C and reconstruct as a gray level.
//
// HSVToRGB panics if im does not have exactly three channels.
func HSVToRGB(im *Image) {
	if im.Channels != 3 {
		panic("pixel: HSVToRGB requires a 3-channel image")
	}

	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			h := im.At(x, y, 0)
			s := im.At(x, y, 1)
			v := im.At(x, y, 2)

			chroma := v * s
			h6 := float64(h) * 6
			cx := chroma * float32(1-math.Abs(math.Mod(h6, 2)-1))
			m := v - chroma

			var r, g, b float32
			switch {
			case h6 < 0 || h6 > 6:
				// invalid hue, leave the pixel achromatic
			case h6 <= 1:
				r, g = chroma, cx
			case h6 <= 2:
				r, g = cx, chroma
			case h6 <= 3:
				g, b = chroma, cx
			case h6 <= 4:
				g, b = cx, chroma
			case h6 <= 5:
				r, b = cx, chroma
			default:
				r, b = chroma, cx
			}

			im.Set(x, y, 0, r+m)
			im.Set(x, y, 1, g+m)
			im.Set(x, y, 2, b+m)
		}
	}
}
