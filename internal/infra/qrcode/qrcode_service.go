package qrcode

import (
	"encoding/json"
	"fmt"

	"pos/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const receiptType = "receipt"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Total   string `json:"total"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new receipt QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.ReceiptCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR generates a QR code carrying the certified order id and total
func (s *qrcodeService) GenerateReceiptQR(orderID string, total decimal.Decimal) ([]byte, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}

	data := QRCodeData{
		OrderID: orderID,
		Total:   total.StringFixed(2),
		Type:    receiptType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReceiptQR parses QR code data and returns the order id and total
func (s *qrcodeService) ParseReceiptQR(qrData string) (string, decimal.Decimal, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", decimal.Zero, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != receiptType {
		return "", decimal.Zero, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return "", decimal.Zero, fmt.Errorf("missing order ID")
	}

	total, err := decimal.NewFromString(data.Total)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("failed to parse total: %w", err)
	}

	return data.OrderID, total, nil
}
