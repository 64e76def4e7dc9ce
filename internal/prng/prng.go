// Package prng implements the deterministic key-seeded byte/word stream
// that the cost-weighted position schedule and camouflage stages build
// on. It is a pure, stateful-per-instance generator: same seed, same
// output stream, forever.
package prng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/virelai/hugostego/internal/config"
)

// KeyPRNG is a deterministic pseudo-random stream derived from a seed.
// It holds no package-level state; every instance is independent.
type KeyPRNG struct {
	state   [sha256.Size]byte
	counter uint64
}

// New derives a KeyPRNG from seed bytes S domain-separated by label L:
// k0 = SHA-256(S ‖ L), then the initial chaining state is
// HMAC-SHA-256(k0, "STEG_INIT_V2").
func New(seed []byte, label string) *KeyPRNG {
	combined := make([]byte, 0, len(seed)+len(label))
	combined = append(combined, seed...)
	combined = append(combined, label...)
	k0 := sha256.Sum256(combined)

	mac := hmac.New(sha256.New, k0[:])
	mac.Write([]byte(config.LabelInit))

	p := &KeyPRNG{}
	copy(p.state[:], mac.Sum(nil))
	return p
}

// nextBlock advances the chain and returns the 32-byte output block.
func (p *KeyPRNG) nextBlock() [sha256.Size]byte {
	p.counter++

	input := make([]byte, sha256.Size+8)
	copy(input, p.state[:])
	binary.LittleEndian.PutUint64(input[sha256.Size:], p.counter)

	mac := hmac.New(sha256.New, p.state[:])
	mac.Write(input)
	var next [sha256.Size]byte
	copy(next[:], mac.Sum(nil))
	p.state = next
	return next
}

// NextU32 returns the first four bytes of the next block as a
// little-endian uint32.
func (p *KeyPRNG) NextU32() uint32 {
	block := p.nextBlock()
	return binary.LittleEndian.Uint32(block[:4])
}

// NextByte returns the low 8 bits of NextU32.
func (p *KeyPRNG) NextByte() byte {
	return byte(p.NextU32())
}

// NextDouble returns NextU32() / uint32max, preserving the source's
// quirk of dividing by 2^32-1 rather than 2^32.
func (p *KeyPRNG) NextDouble() float64 {
	return float64(p.NextU32()) / float64(^uint32(0))
}

// Stream fills buf with successive NextByte() output.
func (p *KeyPRNG) Stream(buf []byte) {
	for i := range buf {
		buf[i] = p.NextByte()
	}
}
