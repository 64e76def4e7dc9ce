package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/virelai/hugostego/models"
)

func uniformImage(w, h int, v uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func TestServiceEmbedExtractRoundTrip(t *testing.T) {
	svc := NewSteganographyService()
	cover := uniformImage(64, 64, 0x80)

	embedResp, err := svc.EmbedMessage(&models.EmbedRequest{
		SecretData: []byte("service layer round trip"),
		StegoKey:   "a-strong-shared-key",
	}, cover)
	if err != nil {
		t.Fatalf("EmbedMessage failed: %v", err)
	}
	if embedResp.ModifiedCount == 0 {
		t.Fatalf("expected a nonzero modified count")
	}

	stego, err := png.Decode(bytes.NewReader(embedResp.StegoImage))
	if err != nil {
		t.Fatalf("failed to decode stego PNG: %v", err)
	}

	extractResp, err := svc.ExtractMessage(&models.ExtractRequest{
		StegoKey: "a-strong-shared-key",
	}, stego)
	if err != nil {
		t.Fatalf("ExtractMessage failed: %v", err)
	}
	if !extractResp.ExtractionOK {
		t.Fatalf("expected extraction to succeed")
	}
	if string(extractResp.SecretData) != "service layer round trip" {
		t.Fatalf("payload mismatch: got %q", extractResp.SecretData)
	}
}

func TestServiceWrongKeyFails(t *testing.T) {
	svc := NewSteganographyService()
	cover := uniformImage(64, 64, 0x80)

	embedResp, err := svc.EmbedMessage(&models.EmbedRequest{
		SecretData: []byte("secret"),
		StegoKey:   "correct-key",
	}, cover)
	if err != nil {
		t.Fatalf("EmbedMessage failed: %v", err)
	}

	stego, err := png.Decode(bytes.NewReader(embedResp.StegoImage))
	if err != nil {
		t.Fatalf("failed to decode stego PNG: %v", err)
	}

	_, err = svc.ExtractMessage(&models.ExtractRequest{StegoKey: "wrong-key"}, stego)
	if err != models.ErrAuthFail {
		t.Fatalf("expected ErrAuthFail, got %v", err)
	}
}

func TestServiceEmptyKeyRejected(t *testing.T) {
	svc := NewSteganographyService()
	cover := uniformImage(16, 16, 0x40)

	if _, err := svc.EmbedMessage(&models.EmbedRequest{SecretData: []byte("x")}, cover); err != models.ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey on embed, got %v", err)
	}
	if _, err := svc.ExtractMessage(&models.ExtractRequest{}, cover); err != models.ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey on extract, got %v", err)
	}
}

func TestServiceCalculateCapacity(t *testing.T) {
	svc := NewSteganographyService()
	res, err := svc.CalculateCapacity(128, 128)
	if err != nil {
		t.Fatalf("CalculateCapacity failed: %v", err)
	}
	if res.TotalSlots != 3*128*128 {
		t.Fatalf("unexpected TotalSlots: %d", res.TotalSlots)
	}
	if res.MaxPayload <= 0 {
		t.Fatalf("expected positive MaxPayload, got %d", res.MaxPayload)
	}

	if _, err := svc.CalculateCapacity(0, 10); err != models.ErrInvalidImage {
		t.Fatalf("expected ErrInvalidImage for zero width, got %v", err)
	}
}
