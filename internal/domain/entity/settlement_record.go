package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRecord is one certified order in the settlement journal.
// OrderID is unique; replayed events for the same order are ignored.
type SettlementRecord struct {
	OrderID        string          `json:"order_id"`
	DraftID        string          `json:"draft_id"`
	TableNumber    int             `json:"table_number"`
	SalespersonID  string          `json:"salesperson_id"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	CustomerID     string          `json:"customer_id,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	PointsRedeemed int             `json:"points_redeemed"`
	PointsEarned   int             `json:"points_earned"`
	SettledAt      time.Time       `json:"settled_at"`
	RecordedAt     time.Time       `json:"recorded_at"`
}
