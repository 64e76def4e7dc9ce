package service

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	"github.com/rs/zerolog/log"

	"github.com/virelai/hugostego/internal/codec"
	"github.com/virelai/hugostego/internal/raster"
	"github.com/virelai/hugostego/models"
)

// stegoService implements SteganographyService atop internal/codec.
type stegoService struct{}

// NewSteganographyService creates a new steganography service instance.
func NewSteganographyService() SteganographyService {
	return &stegoService{}
}

func (s *stegoService) CalculateCapacity(width, height int) (*models.CapacityResult, error) {
	if width <= 0 || height <= 0 {
		return nil, models.ErrInvalidImage
	}

	return &models.CapacityResult{
		Width:        width,
		Height:       height,
		TotalSlots:   3 * width * height,
		BaseCapacity: codec.BaseCapacity(width, height),
		MaxPayload:   codec.MaxCapacity(width, height),
	}, nil
}

func (s *stegoService) EmbedMessage(req *models.EmbedRequest, cover image.Image) (*models.EmbedResponse, error) {
	if req.StegoKey == "" {
		return nil, models.ErrInvalidKey
	}

	buf, err := raster.FromImage(cover)
	if err != nil {
		log.Error().Err(err).Msg("EmbedMessage: failed to convert cover image")
		return nil, models.ErrInvalidImage
	}

	stego, stats, err := codec.Encode(req.SecretData, buf, []byte(req.StegoKey))
	if err != nil {
		return nil, translateCodecErr(err)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, stego.ToImage()); err != nil {
		log.Error().Err(err).Msg("EmbedMessage: failed to encode stego PNG")
		return nil, models.ErrCorruptedData
	}

	log.Debug().
		Int("modified", stats.ModifiedCount).
		Int("camouflage", stats.CamouflageCount).
		Int("base_capacity", stats.BaseCapacity).
		Msg("EmbedMessage: embedding complete")

	return &models.EmbedResponse{
		StegoImage:      out.Bytes(),
		ModifiedCount:   stats.ModifiedCount,
		CamouflageCount: stats.CamouflageCount,
		BaseCapacity:    stats.BaseCapacity,
	}, nil
}

func (s *stegoService) ExtractMessage(req *models.ExtractRequest, stego image.Image) (*models.ExtractResponse, error) {
	if req.StegoKey == "" {
		return nil, models.ErrInvalidKey
	}

	buf, err := raster.FromImage(stego)
	if err != nil {
		log.Error().Err(err).Msg("ExtractMessage: failed to convert stego image")
		return nil, models.ErrInvalidImage
	}

	plaintext, err := codec.Decode(buf, []byte(req.StegoKey))
	if err != nil {
		return nil, translateCodecErr(err)
	}

	filename := req.OutputFilename
	if filename == "" {
		filename = "extracted_secret.bin"
	}

	return &models.ExtractResponse{
		SecretData:   plaintext,
		Filename:     filename,
		FileSize:     len(plaintext),
		ExtractionOK: true,
	}, nil
}

// translateCodecErr maps the internal codec error taxonomy onto the
// models-level sentinel errors the HTTP layer renders. AUTH_FAIL and
// MALFORMED both resolve to the same sentinel so neither path offers a
// caller more information than the other.
func translateCodecErr(err error) error {
	var codecErr *codec.Error
	if !errors.As(err, &codecErr) {
		return err
	}

	switch codecErr.Kind {
	case codec.KindInvalidImage:
		return models.ErrInvalidImage
	case codec.KindCapacity:
		return models.ErrInsufficientCap
	case codec.KindMalformed, codec.KindAuthFail:
		return models.ErrAuthFail
	case codec.KindCryptoInit:
		return models.ErrCryptoInit
	default:
		return models.ErrCorruptedData
	}
}
