package service

import (
	"github.com/shopspring/decimal"
)

// ReceiptCodeService defines the interface for receipt QR code generation and parsing
type ReceiptCodeService interface {
	// GenerateReceiptQR encodes the certified order id and total as a PNG QR code
	GenerateReceiptQR(orderID string, total decimal.Decimal) ([]byte, error)

	// ParseReceiptQR parses QR code data and returns the order id and total
	ParseReceiptQR(qrData string) (orderID string, total decimal.Decimal, err error)
}
