// Package costmap computes the HUGO-inspired per-pixel distortion cost
// that steers both the position schedule and the camouflage density.
// The map is deliberately invariant to LSB modifications: every neighbor
// read masks off its least significant bit before the gradient is
// computed, so an encoder and a decoder working from the same pixels
// before vs. after embedding derive byte-identical maps.
package costmap

import (
	"math"

	"github.com/virelai/hugostego/internal/config"
	"github.com/virelai/hugostego/internal/raster"
)

// Map is a W*H grid of costs in (0, 1]. Border pixels are always 1.0;
// no entry is ever exactly 0.
type Map struct {
	W, H   int
	Values []float32
}

// At returns the cost at pixel (x, y).
func (m *Map) At(x, y int) float32 {
	return m.Values[y*m.W+x]
}

// AtPixel returns the cost at flat pixel index p.
func (m *Map) AtPixel(p int) float32 {
	return m.Values[p]
}

func maskLSB(v byte) float64 {
	return float64(v & 0xFE)
}

// sobel computes the gx, gy gradient for one channel's 3x3 masked
// neighborhood, per spec: the Sobel-like kernel reads the LSB-masked
// neighbor values.
func sobel(tl, t, tr, ml, mr, bl, b, br float64) (gx, gy float64) {
	gx = (-tl + tr - 2*ml + 2*mr - bl + br) / 8
	gy = (-tl - 2*t - tr + bl + 2*b + br) / 8
	return
}

// Compute builds the cost map for buf. Pure function; no side effects,
// no error path (spec 4.C: Failure NONE).
func Compute(buf *raster.Buffer) *Map {
	w, h := buf.W, buf.H
	m := &Map{W: w, H: h, Values: make([]float32, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				m.Values[idx] = 1.0
				continue
			}

			var gsum float64
			for ch := 0; ch < 3; ch++ {
				tl := channelMasked(buf, x-1, y-1, ch)
				t := channelMasked(buf, x, y-1, ch)
				tr := channelMasked(buf, x+1, y-1, ch)
				ml := channelMasked(buf, x-1, y, ch)
				mr := channelMasked(buf, x+1, y, ch)
				bl := channelMasked(buf, x-1, y+1, ch)
				bb := channelMasked(buf, x, y+1, ch)
				br := channelMasked(buf, x+1, y+1, ch)

				gx, gy := sobel(tl, t, tr, ml, mr, bl, bb, br)
				gsum += math.Sqrt(gx*gx + gy*gy)
			}
			g := gsum / 3

			cost := 1.0 - math.Min(g/config.Default.MaxGradient, 0.99)
			if cost < 0.01 {
				cost = 0.01
			}
			m.Values[idx] = float32(cost)
		}
	}
	return m
}

func channelMasked(buf *raster.Buffer, x, y, channel int) float64 {
	pixel := y*buf.W + x
	off := pixel*4 + channel
	return maskLSB(buf.Pix[off])
}
