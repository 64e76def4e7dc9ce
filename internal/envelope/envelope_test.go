package envelope

import (
	"bytes"
	"testing"

	"github.com/virelai/hugostego/internal/config"
	"github.com/virelai/hugostego/internal/prng"
)

func TestSealOpenRoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	plaintext := []byte("hello, stego world")

	frame, err := Seal(secret, plaintext, 1024)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if len(frame) != 1024 {
		t.Fatalf("expected frame length 1024, got %d", len(frame))
	}

	got, err := Open(secret, frame)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestWrongKeyFailsAuth(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	wrong := bytes.Repeat([]byte{0x02}, 32)

	frame, err := Seal(secret, []byte("payload"), 256)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if _, err := Open(wrong, frame); err != ErrAuthFail {
		t.Fatalf("expected ErrAuthFail, got %v", err)
	}
}

func TestTamperedFrameFailsAuth(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)

	frame, err := Seal(secret, []byte("payload"), 256)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	frame[100] ^= 0xFF

	if _, err := Open(secret, frame); err != ErrAuthFail {
		t.Fatalf("expected ErrAuthFail, got %v", err)
	}
}

func TestPadFillsFromKeyPRNG(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	plaintext := []byte("hi")

	frame, err := Seal(secret, plaintext, 200)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	ctLen := len(plaintext)
	padLen := 200 - 32 - ctLen
	padStart := 200 - padLen

	expected := make([]byte, padLen)
	padPRNG := prng.New(secret, config.LabelPad)
	padPRNG.Stream(expected)

	if !bytes.Equal(frame[padStart:], expected) {
		t.Fatalf("pad bytes did not match KeyPRNG(secret || PAD_V2) stream")
	}
}

func TestEmptyPlaintextRoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)

	frame, err := Seal(secret, []byte{}, 128)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	got, err := Open(secret, frame)
	if err != nil {
		t.Fatalf("Open failed on empty-plaintext frame: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %q", got)
	}
}

func TestCapacityExceeded(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	if _, err := Seal(secret, bytes.Repeat([]byte{0}, 100), 64); err != ErrCapacity {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestMalformedLengthRejected(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	frame := make([]byte, 64)
	// LEN declares more ciphertext than the frame can hold.
	frame[0], frame[1], frame[2], frame[3] = 0, 0, 0, 200

	if _, err := Open(secret, frame); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
