package service

// QRCodeService generates QR code images for order tracking numbers.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG QR code encoding the tracking number.
	GenerateTrackingQR(trackingNumber string) ([]byte, error)
}
