package codec

import (
	"github.com/virelai/hugostego/internal/bitset"
	"github.com/virelai/hugostego/internal/config"
	"github.com/virelai/hugostego/internal/costmap"
	"github.com/virelai/hugostego/internal/prng"
	"github.com/virelai/hugostego/internal/raster"
)

// usedSet marks the first n entries of schedule as used, backed by a
// dense bit-vector sized for the full slot domain.
func usedSet(schedule []int, n, totalSlots int) *bitset.Set {
	s := bitset.New(totalSlots)
	for i := 0; i < n; i++ {
		s.Add(schedule[i])
	}
	return s
}

// applyCamouflage adds LSB noise to unused slots whose spatial density
// mirrors modRate, so first-order LSB statistics stay flat over the
// whole image rather than jumping only where real payload bits landed.
// Iteration is ascending slot order, matching the sequential PRNG draw
// the decoder never needs to reproduce (camouflage is never read back).
func applyCamouflage(buf *raster.Buffer, cm *costmap.Map, used *bitset.Set, modRate float64, secret []byte) (flipped int) {
	rng := prng.New(secret, config.LabelCamo)
	totalSlots := buf.TotalSlots()

	for slot := 0; slot < totalSlots; slot++ {
		if used.Contains(slot) {
			continue
		}
		c := float64(cm.AtPixel(raster.PixelOf(slot)))

		var localRate float64
		switch {
		case c < 0.3:
			localRate = 0.5 * modRate
		case c < 0.7:
			localRate = 0.2 * modRate
		default:
			localRate = 0.05 * modRate
		}

		if rng.NextDouble() < localRate {
			off := buf.PixOffset(slot)
			buf.Pix[off] ^= 1
			flipped++
		}
	}
	return flipped
}
