package codec

import (
	"github.com/virelai/hugostego/internal/raster"
)

// embedFrame writes frame (exactly baseCapacity bytes) into buf along
// the first 8*baseCapacity entries of schedule, MSB-first within each
// byte. It returns the count of slots whose LSB actually changed value
// — camouflage needs this to match its noise density to the real
// embedding density.
func embedFrame(buf *raster.Buffer, schedule []int, frame []byte) (modifiedCount int) {
	totalBits := len(frame) * 8
	for b := 0; b < totalBits; b++ {
		slot := schedule[b]
		target := (frame[b/8] >> uint(7-b%8)) & 1

		off := buf.PixOffset(slot)
		current := buf.Pix[off]
		if current&1 != target {
			buf.Pix[off] = (current & 0xFE) | target
			modifiedCount++
		}
	}
	return modifiedCount
}
