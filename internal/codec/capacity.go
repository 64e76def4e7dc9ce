package codec

import (
	"github.com/virelai/hugostego/internal/config"
)

// BaseCapacity returns ⌊3·W·H · BaseEmbeddingRate⌋ / 8 bytes: the total
// frame size (header + ciphertext + tag + pad) a raster of the given
// dimensions can hold.
func BaseCapacity(w, h int) int {
	totalSlots := 3 * w * h
	bits := int(float64(totalSlots) * config.Default.BaseEmbeddingRate)
	return bits / 8
}

// MaxPayload returns the largest plaintext, in bytes, that fits after
// the fixed LEN+NONCE+TAG overhead.
func MaxPayload(w, h int) int {
	max := BaseCapacity(w, h) - config.Default.FrameOverhead
	if max < 0 {
		return 0
	}
	return max
}

// MaxCapacity is the caller-facing capacity query from spec.md 6.
func MaxCapacity(w, h int) int {
	return MaxPayload(w, h)
}
