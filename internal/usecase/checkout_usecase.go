package usecase

import (
	"context"

	"pos/internal/domain/checkout"
	"pos/internal/domain/entity"
	"pos/internal/domain/loyalty"

	"github.com/shopspring/decimal"
)

// Receipt is the printable summary of a settled order.
// Amounts come from the certified order, never from the draft.
type Receipt struct {
	OrderID        string               `json:"order_id"`
	Date           string               `json:"date"`
	TableNumber    int                  `json:"table_number"`
	PaymentMethod  entity.PaymentMethod `json:"payment_method"`
	Lines          []ReceiptLine        `json:"lines"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	DiscountReason string               `json:"discount_reason,omitempty"`
	CustomerName   string               `json:"customer_name,omitempty"`
	PointsRedeemed int                  `json:"points_redeemed"`
	PointsEarned   int                  `json:"points_earned"`
	Warning        string               `json:"warning,omitempty"`
	QRCode         []byte               `json:"qr_code,omitempty"` // PNG
}

// ReceiptLine is one certified order line.
type ReceiptLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CheckoutUsecase drives a table through the checkout steps.
type CheckoutUsecase interface {
	// Pay starts a checkout from the table's current cart.
	Pay(ctx context.Context, tableNumber int, salespersonID string) (*checkout.Session, error)

	// GetSession returns the in-flight checkout of a table.
	GetSession(ctx context.Context, tableNumber int) (*checkout.Session, error)

	// ListSessions returns every in-flight checkout ordered by table number.
	ListSessions(ctx context.Context) ([]checkout.Session, error)

	// SelectCustomer associates a directory customer with the draft.
	SelectCustomer(ctx context.Context, tableNumber int, customerID string) (*checkout.Session, error)

	// ClearCustomer removes the associated customer.
	ClearCustomer(ctx context.Context, tableNumber int) (*checkout.Session, error)

	// Quote previews the discount breakdown without changing the draft.
	Quote(ctx context.Context, tableNumber int, discount entity.DiscountState) (*loyalty.Quote, error)

	// Confirm redeems the requested points and commits the discount into the draft.
	Confirm(ctx context.Context, tableNumber int, discount entity.DiscountState) (*checkout.Session, error)

	// Skip moves to payment with no customer and no discount.
	Skip(ctx context.Context, tableNumber int) (*checkout.Session, error)

	// ChoosePayment settles the draft with the given payment method.
	// On settlement failure the session is returned on the payment step along with the error.
	ChoosePayment(ctx context.Context, tableNumber int, method entity.PaymentMethod) (*checkout.Session, error)

	// Cancel discards the draft. It is refused once settlement has started.
	Cancel(ctx context.Context, tableNumber int) error

	// Receipt returns the receipt of a settled checkout.
	Receipt(ctx context.Context, tableNumber int) (*Receipt, error)

	// CloseReceipt ends the transaction and discards the draft.
	CloseReceipt(ctx context.Context, tableNumber int) error
}
