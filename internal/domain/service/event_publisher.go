package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementEvent is published after an order has been certified by the backend.
type SettlementEvent struct {
	RequestID      string          `json:"request_id,omitempty"` // For distributed tracing
	DraftID        string          `json:"draft_id"`
	OrderID        string          `json:"order_id"`
	TableNumber    int             `json:"table_number"`
	SalespersonID  string          `json:"salesperson_id"`
	PaymentMethod  string          `json:"payment_method"`
	CustomerID     string          `json:"customer_id,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	PointsRedeemed int             `json:"points_redeemed"`
	PointsEarned   int             `json:"points_earned"`
	SettledAt      time.Time       `json:"settled_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSettlementEvent publishes a settled order for downstream consumers
	PublishSettlementEvent(ctx context.Context, event *SettlementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
