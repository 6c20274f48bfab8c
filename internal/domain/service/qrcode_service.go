package service

// QRCodeService defines the interface for product share QR codes
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code linking to the product page
	GenerateProductQR(productID int64) ([]byte, error)

	// GenerateProductQRText renders the same code as block characters for a terminal
	GenerateProductQRText(productID int64) (string, error)

	// ParseProductQR parses QR code content and returns the product ID
	ParseProductQR(qrData string) (int64, error)
}
