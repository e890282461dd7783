package qrcode

import (
	"fmt"
	"strings"

	"beerhaus/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "M", "MEDIUM":
		level = qrcode.Medium
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactQR renders the member contact card as a vCard QR code
func (s *qrcodeService) GenerateContactQR(card *service.ContactCard) ([]byte, error) {
	if card == nil {
		return nil, fmt.Errorf("contact card is required")
	}

	qrCode, err := qrcode.New(EncodeVCard(card), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// EncodeVCard serializes card as a vCard 3.0 document. Empty fields are omitted.
func EncodeVCard(card *service.ContactCard) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")

	fullName := strings.TrimSpace(card.FirstName + " " + card.LastName)
	writeVCardLine(&b, "N", escapeVCard(card.LastName)+";"+escapeVCard(card.FirstName)+";;;")
	writeVCardLine(&b, "FN", escapeVCard(fullName))
	if card.Company != "" {
		writeVCardLine(&b, "ORG", escapeVCard(card.Company))
	}
	if card.Position != "" {
		writeVCardLine(&b, "TITLE", escapeVCard(card.Position))
	}
	if card.Email != "" {
		writeVCardLine(&b, "EMAIL;TYPE=INTERNET", escapeVCard(card.Email))
	}
	if card.Phone != "" {
		writeVCardLine(&b, "TEL;TYPE=CELL", escapeVCard(card.Phone))
	}

	b.WriteString("END:VCARD\r\n")

	return b.String()
}

func writeVCardLine(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteString("\r\n")
}

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

func escapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}
