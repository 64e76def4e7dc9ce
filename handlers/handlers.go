package handlers

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/virelai/hugostego/models"
	"github.com/virelai/hugostego/service"
)

// Handlers struct holds service dependencies.
type Handlers struct {
	steganographyService service.SteganographyService
}

// NewHandlers creates a new handlers instance with service dependencies.
func NewHandlers(stegoService service.SteganographyService) *Handlers {
	return &Handlers{steganographyService: stegoService}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CapacityQuery is the querystring-bound request for GET /capacity.
type CapacityQuery struct {
	Width  int `form:"width" binding:"required,gt=0"`
	Height int `form:"height" binding:"required,gt=0"`
}

// HealthHandler handles the health check endpoint.
//
//	@Summary		Health Check
//	@Description	Returns the health status of the API service
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"Service is healthy"
//	@Router			/health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: "1.0.0"})
}

// CalculateCapacityHandler handles the capacity calculation request.
//
//	@Summary		Calculate Embedding Capacity
//	@Description	Calculates the maximum secret payload size (in bytes) a cover image of the given dimensions can carry.
//	@Tags			Steganography
//	@Produce		json
//	@Param			width	query		int						true	"Cover image width in pixels"
//	@Param			height	query		int						true	"Cover image height in pixels"
//	@Success		200		{object}	models.CapacityResult	"Successfully calculated embedding capacity"
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request: missing or invalid dimensions"
//	@Router			/capacity [get]
func (h *Handlers) CalculateCapacityHandler(c *gin.Context) {
	requestID := requestIDOf(c)

	var q CapacityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Warn().Str("request_id", requestID).Err(err).Msg("CalculateCapacityHandler: invalid dimensions")
		sendError(c, http.StatusBadRequest, "INVALID_DIMENSIONS", "width and height must be positive integers")
		return
	}

	result, err := h.steganographyService.CalculateCapacity(q.Width, q.Height)
	if err != nil {
		sendModelError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EmbedHandler embeds a secret file into a cover image using
// content-adaptive LSB steganography.
//
//	@Summary		Embed secret file into a cover image
//	@Description	Embeds a secret file into the provided cover image using a cost-weighted LSB schedule and an authenticated envelope. Returns a losslessly-encoded PNG stego image.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		image/png
//	@Param			cover		formData	file	true	"Cover image (PNG or JPEG)"
//	@Param			secret		formData	file	true	"Secret file to embed"
//	@Param			stego_key	formData	string	true	"Key that seeds the envelope and position schedule"
//	@Success		200			{file}		binary	"Stego PNG image with embedded secret"
//	@Failure		400			{object}	models.ErrorResponse	"Invalid input"
//	@Failure		422			{object}	models.ErrorResponse	"Payload exceeds cover image capacity"
//	@Failure		500			{object}	models.ErrorResponse	"Processing error"
//	@Router			/embed [post]
func (h *Handlers) EmbedHandler(c *gin.Context) {
	startTime := time.Now()
	requestID := requestIDOf(c)

	log.Info().Str("request_id", requestID).Str("client_ip", c.ClientIP()).Msg("EmbedHandler: starting embed request")

	coverHeader, err := c.FormFile("cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILES", "cover image not provided")
		return
	}
	coverFile, err := coverHeader.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "failed to open cover image")
		return
	}
	defer coverFile.Close()

	cover, _, err := image.Decode(coverFile)
	if err != nil {
		log.Warn().Str("request_id", requestID).Err(err).Msg("EmbedHandler: failed to decode cover image")
		sendError(c, http.StatusBadRequest, "INVALID_IMAGE", "cover file is not a decodable image")
		return
	}

	secretHeader, err := c.FormFile("secret")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILES", "secret file not provided")
		return
	}
	secretFile, err := secretHeader.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "failed to open secret file")
		return
	}
	defer secretFile.Close()

	secretData, err := io.ReadAll(secretFile)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "failed to read secret file")
		return
	}

	stegoKey := c.PostForm("stego_key")
	if stegoKey == "" {
		sendError(c, http.StatusBadRequest, "INVALID_STEGO_KEY", "stego_key is required")
		return
	}

	resp, err := h.steganographyService.EmbedMessage(&models.EmbedRequest{
		SecretData:     secretData,
		SecretFileName: secretHeader.Filename,
		StegoKey:       stegoKey,
	}, cover)
	if err != nil {
		log.Warn().Str("request_id", requestID).Err(err).Msg("EmbedHandler: embed failed")
		sendModelError(c, err)
		return
	}

	processingTime := time.Since(startTime).Milliseconds()
	c.Header("X-Modified-Count", strconv.Itoa(resp.ModifiedCount))
	c.Header("X-Camouflage-Count", strconv.Itoa(resp.CamouflageCount))
	c.Header("X-Processing-Time", strconv.FormatInt(processingTime, 10))
	c.Header("Content-Disposition", `attachment; filename="stego.png"`)

	log.Info().
		Str("request_id", requestID).
		Int("modified", resp.ModifiedCount).
		Int64("duration_ms", processingTime).
		Msg("EmbedHandler: embed complete")

	c.Data(http.StatusOK, "image/png", resp.StegoImage)
}

// ExtractHandler extracts a secret file from a stego image.
//
//	@Summary		Extract secret file from a stego image
//	@Description	Recovers the authenticated plaintext previously embedded into a stego PNG with the same key. A wrong key or tampered image both fail closed with the same error.
//	@Tags			Steganography
//	@Accept			multipart/form-data
//	@Produce		application/octet-stream
//	@Param			stego			formData	file	true	"Stego image (PNG)"
//	@Param			stego_key		formData	string	true	"Key used during embedding"
//	@Param			output_filename	formData	string	false	"Optional output filename override"
//	@Success		200				{file}		binary	"Extracted secret file"
//	@Failure		400				{object}	models.ErrorResponse	"Invalid input"
//	@Failure		401				{object}	models.ErrorResponse	"Authentication failed"
//	@Failure		500				{object}	models.ErrorResponse	"Extraction error"
//	@Router			/extract [post]
func (h *Handlers) ExtractHandler(c *gin.Context) {
	startTime := time.Now()
	requestID := requestIDOf(c)

	stegoHeader, err := c.FormFile("stego")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "stego image not provided")
		return
	}
	stegoFile, err := stegoHeader.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "failed to open stego image")
		return
	}
	defer stegoFile.Close()

	stego, _, err := image.Decode(stegoFile)
	if err != nil {
		log.Warn().Str("request_id", requestID).Err(err).Msg("ExtractHandler: failed to decode stego image")
		sendError(c, http.StatusBadRequest, "INVALID_IMAGE", "stego file is not a decodable image")
		return
	}

	stegoKey := c.PostForm("stego_key")
	if stegoKey == "" {
		sendError(c, http.StatusBadRequest, "INVALID_STEGO_KEY", "stego_key is required")
		return
	}
	outputFilename := c.PostForm("output_filename")

	resp, err := h.steganographyService.ExtractMessage(&models.ExtractRequest{
		StegoKey:       stegoKey,
		OutputFilename: outputFilename,
	}, stego)
	if err != nil {
		log.Warn().Str("request_id", requestID).Err(err).Msg("ExtractHandler: extraction failed")
		sendModelError(c, err)
		return
	}

	processingTime := time.Since(startTime).Milliseconds()
	c.Header("Content-Disposition", `attachment; filename="`+resp.Filename+`"`)
	c.Header("X-Secret-Size", strconv.Itoa(resp.FileSize))
	c.Header("X-Processing-Time", strconv.FormatInt(processingTime, 10))

	log.Info().
		Str("request_id", requestID).
		Int("size", resp.FileSize).
		Int64("duration_ms", processingTime).
		Msg("ExtractHandler: extraction complete")

	c.Data(http.StatusOK, "application/octet-stream", resp.SecretData)
}

// requestIDOf returns the request-scoped trace id set by the request-ID
// middleware in cmd/hugostego-api, generating one if absent (e.g. in unit tests that call a
// handler without the full middleware chain).
func requestIDOf(c *gin.Context) string {
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.NewString()
}

// sendModelError maps a models-level sentinel error to its HTTP status
// and taxonomy code.
func sendModelError(c *gin.Context, err error) {
	switch err {
	case models.ErrInvalidImage:
		sendError(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
	case models.ErrInvalidKey:
		sendError(c, http.StatusBadRequest, "INVALID_STEGO_KEY", err.Error())
	case models.ErrInsufficientCap:
		sendError(c, http.StatusUnprocessableEntity, "CAPACITY", err.Error())
	case models.ErrAuthFail:
		sendError(c, http.StatusUnauthorized, "AUTH_FAIL", err.Error())
	case models.ErrCryptoInit:
		sendError(c, http.StatusInternalServerError, "CRYPTO_INIT", err.Error())
	default:
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", err.Error())
	}
}

// sendError sends a standardized error response.
func sendError(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, models.ErrorResponse{
		Success: false,
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
