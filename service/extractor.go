package service

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/dto"
	"github.com/anishgupta02/receipt-extraction-service/metrics"
)

// OCRClient is the external text producer for images. Satisfied by
// client.TesseractClient; faked in tests.
type OCRClient interface {
	ExtractTextFromUpload(fileHeader *multipart.FileHeader) (string, error)
	ExtractText(filePath string) (string, error)
}

// A PDF text layer shorter than this is treated as a scan with no usable
// layer, and the document goes through image OCR instead.
const minUsableTextLen = 10

// textFromPDF returns the text layer of a PDF, falling back to page-image
// OCR for scanned documents.
func textFromPDF(ocr OCRClient, pdf PDFProcessor, data []byte) (string, error) {
	text, err := pdf.ExtractText(data)
	if err != nil {
		log.Warn().Err(err).Msg("pdf text extraction failed, trying image OCR")
	}
	if len(strings.TrimSpace(text)) >= minUsableTextLen {
		return text, nil
	}

	metrics.OCRFallbacks.Inc()
	images, err := pdf.ExtractImages(data)
	if err != nil {
		return "", fmt.Errorf("scanned pdf image extraction failed: %w", err)
	}
	if len(images) == 0 {
		return "", dto.ErrNoText
	}

	var combined strings.Builder
	for i, img := range images {
		tempImg, err := saveImageToTempFile(img)
		if err != nil {
			log.Warn().Err(err).Int("page", i+1).Msg("failed to stage page image for OCR")
			continue
		}
		pageText, err := ocr.ExtractText(tempImg)
		os.Remove(tempImg)
		if err != nil {
			log.Warn().Err(err).Int("page", i+1).Msg("page OCR failed")
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if strings.TrimSpace(combined.String()) == "" {
		return "", dto.ErrNoText
	}
	return combined.String(), nil
}

func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode page image: %w", err)
	}
	return tempFile.Name(), nil
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return data, nil
}
