package codec

import (
	"github.com/virelai/hugostego/internal/costmap"
	"github.com/virelai/hugostego/internal/envelope"
	"github.com/virelai/hugostego/internal/raster"
	"github.com/virelai/hugostego/internal/schedule"
)

// Stats reports the side-channel measurements a caller can use to
// verify the modification-concentration property (spec.md 8, property
// 7): how many slots the embedder actually flipped vs. how many
// additional slots camouflage touched.
type Stats struct {
	ModifiedCount   int
	CamouflageCount int
	BaseCapacity    int
	TotalSlots      int
}

// Encode seals plaintext into a fresh AEAD frame, builds the
// cost-weighted position schedule from cover's pixels, writes the frame
// along that schedule, and layers camouflage noise over the unused
// slots. cover is never mutated; the returned Buffer is a new stego
// raster of identical dimensions.
func Encode(plaintext []byte, cover *raster.Buffer, secret []byte) (*raster.Buffer, Stats, error) {
	if err := cover.Validate(); err != nil {
		return nil, Stats{}, wrapRasterErr(err)
	}

	baseCapacity := BaseCapacity(cover.W, cover.H)
	maxPayload := MaxPayload(cover.W, cover.H)
	if len(plaintext) > maxPayload {
		return nil, Stats{}, &Error{KindCapacity, envelope.ErrCapacity}
	}

	frame, err := envelope.Seal(secret, plaintext, baseCapacity)
	if err != nil {
		return nil, Stats{}, wrapEnvelopeErr(err)
	}

	stego := &raster.Buffer{W: cover.W, H: cover.H, Pix: append([]byte(nil), cover.Pix...)}

	cm := costmap.Compute(cover)
	totalSlots := cover.TotalSlots()
	sched := schedule.Build(secret, cm, totalSlots)

	usedBits := 8 * baseCapacity
	modifiedCount := embedFrame(stego, sched, frame)

	modRate := 0.0
	if usedBits > 0 {
		modRate = float64(modifiedCount) / float64(usedBits)
	}

	used := usedSet(sched, usedBits, totalSlots)
	camoCount := applyCamouflage(stego, cm, used, modRate, secret)

	return stego, Stats{
		ModifiedCount:   modifiedCount,
		CamouflageCount: camoCount,
		BaseCapacity:    baseCapacity,
		TotalSlots:      totalSlots,
	}, nil
}

// Decode recomputes the cost map and schedule from stego's pixels
// (identical to what Encode derived, since the cost map masks LSBs and
// camouflage never touches anything but LSBs) and recovers the
// authenticated plaintext.
func Decode(stego *raster.Buffer, secret []byte) ([]byte, error) {
	if err := stego.Validate(); err != nil {
		return nil, wrapRasterErr(err)
	}

	baseCapacity := BaseCapacity(stego.W, stego.H)

	cm := costmap.Compute(stego)
	totalSlots := stego.TotalSlots()
	sched := schedule.Build(secret, cm, totalSlots)

	frame := extractFrame(stego, sched, baseCapacity)

	plaintext, err := envelope.Open(secret, frame)
	if err != nil {
		return nil, wrapEnvelopeErr(err)
	}
	return plaintext, nil
}
