package service

// ContactCard holds the fields encoded into a member contact QR code.
type ContactCard struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Position  string
}

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateContactQR encodes card as a vCard and renders it as a PNG QR code
	GenerateContactQR(card *ContactCard) ([]byte, error)
}
