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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBilinearSampleAtGridPoints(t *testing.T) {
	im := testImage()

	// at exact integer coordinates no blending may happen
	for c := 0; c < im.Channels; c++ {
		for y := 0; y < im.Height; y++ {
			for x := 0; x < im.Width; x++ {
				got := BilinearSample(im, float64(x), float64(y), c)
				want := im.At(x, y, c)
				if got != want {
					t.Errorf("BilinearSample(%d,%d,%d) = %g, want %g",
						x, y, c, got, want)
				}
			}
		}
	}
}

func TestBilinearSampleBetweenGridPoints(t *testing.T) {
	im := New(2, 2, 1)
	copy(im.Pix, []float32{0, 1, 1, 0})

	tests := []struct {
		x, y float64
		want float64
	}{
		{0.5, 0, 0.5},
		{0, 0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.25, 0, 0.25},
		{0.25, 0.25, 0.375},
		{-1, -1, 0},    // fully clamped to the corner
		{0.5, -5, 0.5}, // clamped vertically, blended horizontally
	}

	for _, tt := range tests {
		got := BilinearSample(im, tt.x, tt.y, 0)
		if math.Abs(float64(got)-tt.want) > 1e-6 {
			t.Errorf("BilinearSample(%g,%g) = %g, want %g",
				tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNearestSample(t *testing.T) {
	im := testImage()

	tests := []struct {
		x, y   float64
		px, py int
	}{
		{0, 0, 0, 0},
		{0.4, 0.4, 0, 0},
		{0.5, 0, 1, 0}, // ties round away from zero
		{1.6, 1.5, 2, 2},
		{-0.4, 0, 0, 0},
		{5.7, 9.9, 3, 2}, // rounds first, then clamps
	}

	for _, tt := range tests {
		got := NearestSample(im, tt.x, tt.y, 1)
		want := im.At(tt.px, tt.py, 1)
		if got != want {
			t.Errorf("NearestSample(%g,%g) = %g, want %g (pixel %d,%d)",
				tt.x, tt.y, got, want, tt.px, tt.py)
		}
	}
}

func TestResizeIdentity(t *testing.T) {
	im := testImage()

	// with equal sizes the grid mapping is the identity
	nn := ResizeNearest(im, im.Width, im.Height)
	if d := cmp.Diff(im, nn); d != "" {
		t.Errorf("nearest identity resize (-want +got):\n%s", d)
	}

	bl := ResizeBilinear(im, im.Width, im.Height)
	if d := cmp.Diff(im, bl, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("bilinear identity resize (-want +got):\n%s", d)
	}
}

func TestResizeNearestDownsample(t *testing.T) {
	im := New(4, 4, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			im.Set(x, y, 0, float32(10*y+x))
		}
	}

	// ratio 2: destination column col maps to source x = 2*col + 0.5,
	// which rounds up, so the 2x2 result picks pixels 1 and 3 per axis
	got := ResizeNearest(im, 2, 2)
	want := []float32{11, 13, 31, 33}
	if d := cmp.Diff(want, got.Pix); d != "" {
		t.Errorf("downsample (-want +got):\n%s", d)
	}
}

func TestResizeBilinearUpsample(t *testing.T) {
	im := New(2, 2, 1)
	copy(im.Pix, []float32{0, 1, 1, 0})

	got := ResizeBilinear(im, 4, 4)

	// every output is a convex blend of inputs from [0,1]
	for i, v := range got.Pix {
		if v < 0 || v > 1 {
			t.Errorf("Pix[%d] = %g, outside [0,1]", i, v)
		}
	}

	// the four corners reproduce the four source corners
	corners := []struct {
		x, y int
		want float32
	}{
		{0, 0, 0},
		{3, 0, 1},
		{0, 3, 1},
		{3, 3, 0},
	}
	for _, tt := range corners {
		if got := got.At(tt.x, tt.y, 0); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("corner (%d,%d) = %g, want %g", tt.x, tt.y, got, tt.want)
		}
	}

	// interior sample, computed by hand: source position (0.25, 0.25)
	if got := got.At(1, 1, 0); math.Abs(float64(got)-0.375) > 1e-6 {
		t.Errorf("At(1,1) = %g, want 0.375", got)
	}

	// the checkerboard is symmetric under 180 degree rotation
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := got.At(x, y, 0)
			b := got.At(3-x, 3-y, 0)
			if math.Abs(float64(a-b)) > 1e-6 {
				t.Errorf("rotation symmetry broken at (%d,%d): %g vs %g",
					x, y, a, b)
			}
		}
	}
}

func TestResizeKeepsChannels(t *testing.T) {
	im := testImage()
	got := ResizeBilinear(im, 8, 5)
	if got.Width != 8 || got.Height != 5 || got.Channels != im.Channels {
		t.Errorf("resized shape = %dx%dx%d, want 8x5x%d",
			got.Width, got.Height, got.Channels, im.Channels)
	}
}

func TestResizePanicsOnNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resize to width 0 did not panic")
		}
	}()
	ResizeNearest(testImage(), 0, 4)
}
