// Package schedule builds the deterministic, cost-weighted permutation
// of slot indices that the embedder, extractor, and camouflage stages
// walk in lock-step. Encoder and decoder must derive byte-identical
// schedules from the same key and the same pixel buffer.
package schedule

import (
	"github.com/virelai/hugostego/internal/config"
	"github.com/virelai/hugostego/internal/costmap"
	"github.com/virelai/hugostego/internal/prng"
	"github.com/virelai/hugostego/internal/raster"
)

// weight returns the biased-shuffle weight for a slot: low weight for
// slots whose pixel cost exceeds the "too risky to touch" threshold,
// otherwise the inverse of the cost (cheaper pixels get heavier
// weight, i.e. are more likely to be pulled early in the permutation).
func weight(cm *costmap.Map, slot int) float64 {
	pixel := raster.PixelOf(slot)
	cost := float64(cm.AtPixel(pixel))
	if cost > 1-config.Default.MinCostThreshold {
		return 0.01
	}
	if cost < 0.01 {
		cost = 0.01
	}
	return 1 / cost
}

// Build runs the biased Fisher-Yates shuffle described in spec.md 4.D.
// The swap predicate mixes a deterministic "heavier wins" comparison
// with a flat 30% random swap chance; this is not a textbook
// weighted-reservoir algorithm and must be preserved exactly, since the
// decoder depends on it bit-for-bit. Weights are read through the
// current P[i]/P[j] — not through the original index — so the
// comparison tracks whatever slot has been shuffled into that position
// so far.
func Build(secret []byte, cm *costmap.Map, totalSlots int) []int {
	rng := prng.New(secret, config.LabelScatter)

	p := make([]int, totalSlots)
	weights := make([]float64, totalSlots)
	for i := 0; i < totalSlots; i++ {
		p[i] = i
		weights[i] = weight(cm, i)
	}

	for i := 0; i < totalSlots; i++ {
		r := totalSlots - i
		if r <= 1 {
			break
		}
		u := rng.NextU32()
		j := i + int(u%uint32(r))

		wi := weights[p[i]]
		wj := weights[p[j]]
		if wj > wi || rng.NextDouble() < config.Default.SwapBiasProbability {
			p[i], p[j] = p[j], p[i]
		}
	}
	return p
}
