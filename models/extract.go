package models

type ExtractRequest struct {
	StegoKey       string `json:"stego_key" binding:"required"`
	OutputFilename string `json:"output_filename,omitempty"`
}

type ExtractResponse struct {
	SecretData   []byte `json:"-"`
	Filename     string `json:"filename,omitempty"`
	FileSize     int    `json:"file_size"`
	ExtractionOK bool   `json:"extraction_ok"`
}
