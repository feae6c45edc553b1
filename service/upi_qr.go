package service

import (
	"bytes"
	"image"
	"net/url"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/rs/zerolog/log"
)

// merchantFromUPIQR tries to decode a UPI payment QR code from a receipt
// image and returns the payee name embedded in it. Receipts printed by UPI
// payment apps carry a upi://pay URI whose pn parameter is far more
// reliable than OCR-ing the merchant header. Returns "" when there is no
// readable UPI QR; that is the common case and never an error.
func merchantFromUPIQR(imageData []byte) string {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return ""
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return ""
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return ""
	}

	merchant := payeeFromUPIURI(result.GetText())
	if merchant != "" {
		log.Debug().Str("merchant", merchant).Msg("merchant recovered from UPI QR")
	}
	return merchant
}

// payeeFromUPIURI extracts the payee name (pn) from a upi:// payment URI,
// falling back to the payee address (pa) when no name is present.
func payeeFromUPIURI(raw string) string {
	if !strings.HasPrefix(strings.ToLower(raw), "upi://") {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	query := u.Query()
	if pn := query.Get("pn"); pn != "" {
		return pn
	}
	return query.Get("pa")
}
