package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateArticleQR renders content as a PNG QR code
	GenerateArticleQR(content string) ([]byte, error)
}
