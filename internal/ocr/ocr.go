package ocr

import (
	appconfig "smart-healthcare-backend/internal/config"

	"github.com/otiai10/gosseract/v2"
)

// TesseractExtractor extracts text from uploaded images using the system
// Tesseract installation. A fresh client is created per call; gosseract
// clients are not safe for concurrent use.
type TesseractExtractor struct {
	language string
}

// NewTesseractExtractor builds an extractor with the configured language
func NewTesseractExtractor(cfg *appconfig.Config) *TesseractExtractor {
	return &TesseractExtractor{language: cfg.OCR.Language}
}

// Extract runs OCR over the image bytes and returns the recognized text
func (e *TesseractExtractor) Extract(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", err
	}

	return client.Text()
}
