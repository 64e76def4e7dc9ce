package service

import (
	"image"

	"github.com/virelai/hugostego/models"
)

// SteganographyService defines the interface for content-adaptive image
// steganography operations.
type SteganographyService interface {
	// CalculateCapacity reports how many plaintext bytes a cover image
	// of the given dimensions can carry.
	CalculateCapacity(width, height int) (*models.CapacityResult, error)

	// EmbedMessage seals secretData into cover at the rate the key's
	// derived schedule and cost map allow, returning the stego image
	// (PNG-encoded) and embedding statistics.
	EmbedMessage(req *models.EmbedRequest, cover image.Image) (*models.EmbedResponse, error)

	// ExtractMessage recovers the authenticated plaintext previously
	// embedded into stego with the same key.
	ExtractMessage(req *models.ExtractRequest, stego image.Image) (*models.ExtractResponse, error)
}
