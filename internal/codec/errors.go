// Package codec composes KeyPRNG, the AEAD envelope, the cost map, the
// position schedule, the embedder, the extractor, and camouflage into
// the top-level Encode/Decode operations, plus the capacity query that
// gates them.
package codec

import (
	"errors"

	"github.com/virelai/hugostego/internal/envelope"
	"github.com/virelai/hugostego/internal/raster"
)

// Kind is one of the five error taxonomy members from spec.md 7.
type Kind string

const (
	KindInvalidImage Kind = "INVALID_IMAGE"
	KindCapacity     Kind = "CAPACITY"
	KindMalformed    Kind = "MALFORMED"
	KindAuthFail     Kind = "AUTH_FAIL"
	KindCryptoInit   Kind = "CRYPTO_INIT"
)

// Error wraps an underlying failure with its taxonomy Kind so handlers
// can render a stable code without string-matching error messages.
// AUTH_FAIL and MALFORMED must be indistinguishable in timing and
// return shape to a caller; codec never takes a shortcut that would
// let one resolve faster than the other.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapEnvelopeErr(err error) error {
	switch {
	case errors.Is(err, envelope.ErrCapacity):
		return &Error{KindCapacity, err}
	case errors.Is(err, envelope.ErrMalformed), errors.Is(err, envelope.ErrAuthFail):
		// An out-of-range LEN and a failed tag surface as the same
		// AUTH_FAIL value, so a caller cannot tell them apart.
		return &Error{KindAuthFail, envelope.ErrAuthFail}
	case errors.Is(err, envelope.ErrCryptoInit):
		return &Error{KindCryptoInit, err}
	default:
		return err
	}
}

func wrapRasterErr(err error) error {
	if errors.Is(err, raster.ErrInvalidImage) {
		return &Error{KindInvalidImage, err}
	}
	return err
}
