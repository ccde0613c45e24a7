package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GeneratePaymentQR renders a payment link URL as a PNG QR code.
	GeneratePaymentQR(url string) ([]byte, error)
}
