package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

const ordersPath = "/api/orders"

type orderGateway struct {
	client *Client
}

// NewOrderGateway creates the order submission adapter.
func NewOrderGateway(client *Client) service.OrderGateway {
	return &orderGateway{client: client}
}

// orderPayload is the wire shape of an order; money is sent as a JSON number.
type orderPayload struct {
	SalespersonID  string             `json:"salespersonId"`
	TableNumber    int                `json:"tableNumber"`
	PaymentMethod  string             `json:"paymentMethod"`
	CustomerID     *string            `json:"customerId"`
	DiscountAmount json.Number        `json:"discountAmount"`
	DiscountReason *string            `json:"discountReason"`
	Items          []entity.OrderItem `json:"items"`
}

// SubmitOrder posts the order and returns the certified record.
func (g *orderGateway) SubmitOrder(ctx context.Context, req *entity.OrderRequest) (*entity.CertifiedOrder, error) {
	if req == nil {
		return nil, errors.New("order request is nil")
	}

	payload := orderPayload{
		SalespersonID:  req.SalespersonID,
		TableNumber:    req.TableNumber,
		PaymentMethod:  string(req.PaymentMethod),
		CustomerID:     req.CustomerID,
		DiscountAmount: json.Number(req.DiscountAmount.StringFixed(2)),
		DiscountReason: req.DiscountReason,
		Items:          req.Items,
	}
	if payload.Items == nil {
		payload.Items = []entity.OrderItem{}
	}

	var order entity.CertifiedOrder
	if err := g.client.do(ctx, http.MethodPost, ordersPath, payload, &order); err != nil {
		return nil, err
	}

	if order.ID == "" {
		return nil, errors.New("backend returned an order without id")
	}

	return &order, nil
}
