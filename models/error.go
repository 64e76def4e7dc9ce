package models

import "errors"

// Predefined errors for steganography operations.
var (
	ErrInvalidImage    = errors.New("failed to decode image data, not a valid PNG/JPEG/image buffer")
	ErrInsufficientCap = errors.New("insufficient cover image capacity for the provided payload")
	ErrInvalidKey      = errors.New("stego key cannot be empty")
	ErrAuthFail        = errors.New("authentication failed - wrong key or corrupted stego image")
	ErrCorruptedData   = errors.New("embedded frame appears to be malformed")
	ErrCryptoInit      = errors.New("failed to initialize cipher")
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
