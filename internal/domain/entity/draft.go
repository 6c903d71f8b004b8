package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDraft is the in-flight transaction carried through the checkout steps.
// Client-side amounts are advisory; ServerOrder holds the certified values once settled.
type TransactionDraft struct {
	ID            uuid.UUID         `json:"id"`
	TableNumber   int               `json:"table_number"`
	SalespersonID string            `json:"salesperson_id"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Cart          Cart              `json:"cart"` // Snapshot taken when payment was requested.
	Customer      *CustomerSnapshot `json:"customer,omitempty"`

	PointsRedeemed int             `json:"points_redeemed"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountReason string          `json:"discount_reason,omitempty"`
	FinalTotal     decimal.Decimal `json:"final_total"`
	PaymentMethod  PaymentMethod   `json:"payment_method,omitempty"`

	ServerOrder  *CertifiedOrder `json:"server_order,omitempty"`
	PointsEarned int             `json:"points_earned"`
	Warning      string          `json:"warning,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewTransactionDraft seeds a draft from a copy of the cart.
func NewTransactionDraft(tableNumber int, salespersonID string, cart Cart) *TransactionDraft {
	snapshot := cart.Clone()
	subtotal := snapshot.Total()

	return &TransactionDraft{
		ID:             uuid.New(),
		TableNumber:    tableNumber,
		SalespersonID:  salespersonID,
		Subtotal:       subtotal,
		Cart:           snapshot,
		DiscountAmount: decimal.Zero,
		FinalTotal:     subtotal,
		CreatedAt:      time.Now(),
	}
}

// Clone returns a deep copy of the draft.
func (d *TransactionDraft) Clone() *TransactionDraft {
	if d == nil {
		return nil
	}

	cloned := *d
	cloned.Cart = d.Cart.Clone()
	if d.Customer != nil {
		customer := *d.Customer
		cloned.Customer = &customer
	}
	if d.ServerOrder != nil {
		order := *d.ServerOrder
		order.Items = append([]CertifiedOrderLine(nil), d.ServerOrder.Items...)
		cloned.ServerOrder = &order
	}

	return &cloned
}

// CustomerID returns the selected customer's ID, or "" when the draft has no customer.
func (d *TransactionDraft) CustomerID() string {
	if d == nil || d.Customer == nil {
		return ""
	}

	return d.Customer.Customer.ID
}

// OrderItems maps the cart snapshot to the settlement item list.
func (d *TransactionDraft) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(d.Cart.Lines))
	for _, line := range d.Cart.Lines {
		items = append(items, OrderItem{ID: line.ProductID, Quantity: line.Quantity})
	}

	return items
}
