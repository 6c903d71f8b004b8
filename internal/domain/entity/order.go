package entity

import "github.com/shopspring/decimal"

// OrderItem is the only line information sent to the backend; prices are resolved server side.
type OrderItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// OrderRequest is the settlement payload. It never carries a subtotal or final total.
type OrderRequest struct {
	SalespersonID  string          `json:"salespersonId"`
	TableNumber    int             `json:"tableNumber"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	CustomerID     *string         `json:"customerId,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	DiscountReason *string         `json:"discountReason,omitempty"`
	Items          []OrderItem     `json:"items"`
}

// CertifiedOrderLine is an order line as priced by the backend.
type CertifiedOrderLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CertifiedOrder is the backend's authoritative record of a settled order.
type CertifiedOrder struct {
	ID             string               `json:"id"`
	Date           string               `json:"date"`
	SalespersonID  string               `json:"salespersonId"`
	TableNumber    int                  `json:"tableNumber"`
	PaymentMethod  PaymentMethod        `json:"paymentMethod"`
	CustomerID     string               `json:"customerId,omitempty"`
	TotalAmount    decimal.Decimal      `json:"totalAmount"`
	DiscountAmount decimal.Decimal      `json:"discountAmount"`
	DiscountReason string               `json:"discountReason,omitempty"`
	Items          []CertifiedOrderLine `json:"items"`
}
