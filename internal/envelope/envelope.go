// Package envelope implements the authenticated encryption framing
// described in spec.md 4.B and the Frame layout in spec.md 3: a
// LEN-prefixed, AES-256-GCM-sealed, PAD-filled byte string whose total
// length always equals the caller's base capacity.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/virelai/hugostego/internal/config"
	"github.com/virelai/hugostego/internal/prng"
)

const (
	nonceSize = 12
	tagSize   = 16
	lenSize   = 4
	// HeaderSize is LEN+NONCE, the fixed prefix before the ciphertext.
	HeaderSize = lenSize + nonceSize
)

// Sentinel errors. AuthFail and Malformed are surfaced identically by
// the codec package's error mapping — callers must not be able to
// distinguish "wrong key" from "corrupt frame" by inspecting which of
// these two is returned.
var (
	ErrCapacity   = errors.New("envelope: ciphertext does not fit in base capacity")
	ErrMalformed  = errors.New("envelope: declared length out of range")
	ErrAuthFail   = errors.New("envelope: authentication failed")
	ErrCryptoInit = errors.New("envelope: underlying primitive refused")
)

func encKey(secret []byte) []byte {
	sum := sha256.Sum256(append(append([]byte{}, secret...), []byte(config.LabelEncKey)...))
	return sum[:]
}

func newGCM(secret []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(encKey(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoInit, err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoInit, err)
	}
	if gcm.Overhead() != tagSize {
		return nil, fmt.Errorf("%w: unexpected tag size %d", ErrCryptoInit, gcm.Overhead())
	}
	return gcm, nil
}

// Seal builds a complete, baseCapacity-byte frame from plaintext: a
// freshly-nonced AES-256-GCM ciphertext plus a PRNG-filled pad so the
// frame always occupies exactly baseCapacity bytes.
func Seal(secret, plaintext []byte, baseCapacity int) ([]byte, error) {
	gcm, err := newGCM(secret)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoInit, err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	ct := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	if len(ct)+config.Default.FrameOverhead > baseCapacity {
		return nil, ErrCapacity
	}
	padLen := baseCapacity - config.Default.FrameOverhead - len(ct)

	frame := make([]byte, baseCapacity)
	binary.BigEndian.PutUint32(frame[0:4], uint32(len(ct)))
	copy(frame[4:4+nonceSize], nonce)
	copy(frame[4+nonceSize:], ct)
	copy(frame[4+nonceSize+len(ct):], tag)

	if padLen > 0 {
		padRNG := prng.New(secret, config.LabelPad)
		padRNG.Stream(frame[baseCapacity-padLen:])
	}

	return frame, nil
}

// Open parses a baseCapacity-byte frame and authenticates+decrypts its
// ciphertext. AuthFail and Malformed must render indistinguishably to
// the caller: an out-of-range LEN still runs key derivation and the
// AEAD open (over the largest ciphertext the frame can hold) before
// ErrMalformed is returned, so both paths do the same kind of work.
func Open(secret, frame []byte) ([]byte, error) {
	if len(frame) < config.Default.FrameOverhead {
		return nil, ErrMalformed
	}

	ctLen := int(binary.BigEndian.Uint32(frame[0:4]))
	malformed := ctLen < 0 || ctLen+config.Default.FrameOverhead > len(frame)
	if malformed {
		ctLen = len(frame) - config.Default.FrameOverhead
	}

	nonce := frame[4 : 4+nonceSize]
	ct := frame[4+nonceSize : 4+nonceSize+ctLen]
	tag := frame[4+nonceSize+ctLen : 4+nonceSize+ctLen+tagSize]

	gcm, err := newGCM(secret)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ct)+len(tag))
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if malformed {
		return nil, ErrMalformed
	}
	if err != nil {
		return nil, ErrAuthFail
	}
	return plaintext, nil
}
