package costmap

import (
	"testing"

	"github.com/virelai/hugostego/internal/raster"
)

func uniformBuffer(w, h int, v byte) *raster.Buffer {
	buf := raster.NewBuffer(w, h)
	for i := 0; i < w*h; i++ {
		off := i * 4
		buf.Pix[off] = v
		buf.Pix[off+1] = v
		buf.Pix[off+2] = v
		buf.Pix[off+3] = 255
	}
	return buf
}

func TestBorderCostIsOne(t *testing.T) {
	buf := uniformBuffer(16, 16, 0x80)
	m := Compute(buf)

	for x := 0; x < buf.W; x++ {
		if m.At(x, 0) != 1.0 || m.At(x, buf.H-1) != 1.0 {
			t.Fatalf("expected border row cost 1.0 at x=%d", x)
		}
	}
	for y := 0; y < buf.H; y++ {
		if m.At(0, y) != 1.0 || m.At(buf.W-1, y) != 1.0 {
			t.Fatalf("expected border column cost 1.0 at y=%d", y)
		}
	}
}

func TestCostNeverZero(t *testing.T) {
	buf := uniformBuffer(32, 32, 0x00)
	m := Compute(buf)
	for _, v := range m.Values {
		if v <= 0 {
			t.Fatalf("cost must never be <= 0, got %f", v)
		}
	}
}

func TestUniformImageHasMaxCost(t *testing.T) {
	buf := uniformBuffer(16, 16, 0x80)
	m := Compute(buf)
	// Zero gradient everywhere -> cost saturates at 1.0 even in the interior.
	if m.At(8, 8) != 1.0 {
		t.Fatalf("expected uniform-image interior cost 1.0, got %f", m.At(8, 8))
	}
}

func TestLSBInvariance(t *testing.T) {
	buf1 := raster.NewBuffer(16, 16)
	buf2 := raster.NewBuffer(16, 16)
	for i := range buf1.Pix {
		buf1.Pix[i] = byte(i * 37 % 256)
		buf2.Pix[i] = buf1.Pix[i]
	}
	// Flip every R/G/B LSB in buf2; Alpha stays put since it never
	// participates in embedding or cost computation.
	for p := 0; p < buf2.W*buf2.H; p++ {
		off := p * 4
		buf2.Pix[off] ^= 1
		buf2.Pix[off+1] ^= 1
		buf2.Pix[off+2] ^= 1
	}

	m1 := Compute(buf1)
	m2 := Compute(buf2)

	for i := range m1.Values {
		if m1.Values[i] != m2.Values[i] {
			t.Fatalf("cost map changed after LSB-only flip at index %d: %f != %f", i, m1.Values[i], m2.Values[i])
		}
	}
}

func TestTexturedRegionHasLowerCost(t *testing.T) {
	buf := uniformBuffer(16, 16, 0x80)
	// Punch a high-contrast checkerboard of 2x2 cells into the center to
	// create gradient there (a 1-pixel checkerboard gives a zero response
	// from the Sobel-like kernel).
	for y := 6; y < 10; y++ {
		for x := 6; x < 10; x++ {
			v := byte(0x00)
			if (x/2+y/2)%2 == 0 {
				v = 0xFF
			}
			off := (y*buf.W + x) * 4
			buf.Pix[off] = v
			buf.Pix[off+1] = v
			buf.Pix[off+2] = v
		}
	}
	m := Compute(buf)
	if m.At(7, 7) >= m.At(1, 1) {
		t.Fatalf("expected textured region cost %f < flat region cost %f", m.At(7, 7), m.At(1, 1))
	}
}
