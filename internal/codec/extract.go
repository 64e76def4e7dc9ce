package codec

import (
	"github.com/virelai/hugostego/internal/raster"
)

// extractFrame reads frameLen bytes MSB-first from consecutive 8-bit
// windows along the first 8*frameLen entries of schedule.
func extractFrame(buf *raster.Buffer, schedule []int, frameLen int) []byte {
	frame := make([]byte, frameLen)
	totalBits := frameLen * 8
	for b := 0; b < totalBits; b++ {
		slot := schedule[b]
		bit := buf.ChannelAt(slot) & 1
		if bit != 0 {
			frame[b/8] |= 1 << uint(7-b%8)
		}
	}
	return frame
}
