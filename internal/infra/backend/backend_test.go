package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/"
	cfg.Backend.Timeout = 2 * time.Second

	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestOrderGateway_SubmitOrder(t *testing.T) {
	var captured map[string]any
	var requestID string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		requestID = r.Header.Get("X-Request-Id")

		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		require.NoError(t, decoder.Decode(&captured))

		writeJSON(w, http.StatusCreated, `{
			"id": "o-1",
			"date": "2026-01-02T12:00:00Z",
			"salespersonId": "s-1",
			"tableNumber": 4,
			"paymentMethod": "CB",
			"customerId": "c-1",
			"totalAmount": 40.5,
			"discountAmount": 5,
			"discountReason": "Loyalty: 100 pts (-5.00€)",
			"items": [{"id": "p-1", "name": "Burger", "price": 12.5, "quantity": 2}]
		}`)
	})

	customerID := "c-1"
	reason := "Loyalty: 100 pts (-5.00€)"
	req := &entity.OrderRequest{
		SalespersonID:  "s-1",
		TableNumber:    4,
		PaymentMethod:  entity.PaymentMethodCard,
		CustomerID:     &customerID,
		DiscountAmount: decimal.NewFromInt(5),
		DiscountReason: &reason,
		Items:          []entity.OrderItem{{ID: "p-1", Quantity: 2}},
	}

	ctx, _ := deliverycontext.WithScope(context.Background(), "req-9", nil)
	order, err := NewOrderGateway(client).SubmitOrder(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "req-9", requestID)
	assert.Equal(t, json.Number("5.00"), captured["discountAmount"])
	assert.Equal(t, "c-1", captured["customerId"])
	assert.NotContains(t, captured, "totalAmount")
	assert.NotContains(t, captured, "subtotal")

	assert.Equal(t, "o-1", order.ID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("40.5")))
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("12.5")))
}

func TestOrderGateway_SubmitOrder_NullOptionalFields(t *testing.T) {
	var captured map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeJSON(w, http.StatusOK, `{"id": "o-2", "totalAmount": 10, "discountAmount": 0, "items": []}`)
	})

	_, err := NewOrderGateway(client).SubmitOrder(context.Background(), &entity.OrderRequest{
		SalespersonID: "s-1",
		TableNumber:   1,
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Contains(t, captured, "customerId")
	assert.Nil(t, captured["customerId"])
	assert.Nil(t, captured["discountReason"])
	assert.Equal(t, []any{}, captured["items"])
}

func TestOrderGateway_SubmitOrder_BackendError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"message body", http.StatusBadRequest, `{"message": "Produit inconnu"}`, "Produit inconnu"},
		{"empty body", http.StatusInternalServerError, ``, ""},
		{"non json body", http.StatusBadGateway, `upstream down`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := NewOrderGateway(client).SubmitOrder(context.Background(), &entity.OrderRequest{TableNumber: 1})
			require.Error(t, err)

			var backendErr *service.BackendError
			require.True(t, errors.As(err, &backendErr))
			assert.Equal(t, tt.status, backendErr.StatusCode)
			assert.Equal(t, tt.wantMessage, backendErr.Message)
		})
	}
}

func TestOrderGateway_SubmitOrder_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"totalAmount": 10}`)
	})

	_, err := NewOrderGateway(client).SubmitOrder(context.Background(), &entity.OrderRequest{TableNumber: 1})
	assert.Error(t, err)
}

func TestCustomerDirectory_ListAndFind(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/customers":
			writeJSON(w, http.StatusOK, `[{"id": "c-1", "name": "Émile", "phone": "0600", "loyaltyPoints": 250}]`)
		case "/api/customers/c-1":
			writeJSON(w, http.StatusOK, `{"id": "c-1", "name": "Émile", "phone": "0600", "loyaltyPoints": 250}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message": "Client introuvable"}`)
		}
	})

	directory := NewCustomerDirectory(client)

	customers, err := directory.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 250, customers[0].LoyaltyPoints)

	customer, err := directory.FindByID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Émile", customer.Name)

	_, err = directory.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)
}

func TestCustomerDirectory_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body service.NewCustomer
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana", body.Name)

		writeJSON(w, http.StatusCreated, `{"id": "c-9", "name": "Ana", "phone": "0611", "loyaltyPoints": 0}`)
	})

	customer, err := NewCustomerDirectory(client).Create(context.Background(), service.NewCustomer{Name: "Ana", Phone: "0611"})
	require.NoError(t, err)
	assert.Equal(t, "c-9", customer.ID)
	assert.Zero(t, customer.LoyaltyPoints)
}

func TestCustomerDirectory_Redeem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/c-1/redeem", r.URL.Path)

		var body redeemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Points > 200 {
			writeJSON(w, http.StatusBadRequest, `{"message": "Solde insuffisant"}`)

			return
		}

		writeJSON(w, http.StatusOK, `{"discountAmount": 10}`)
	})

	directory := NewCustomerDirectory(client)

	discount, err := directory.Redeem(context.Background(), "c-1", 200)
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(10)))

	_, err = directory.Redeem(context.Background(), "c-1", 300)
	var backendErr *service.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusBadRequest, backendErr.StatusCode)
	assert.Equal(t, "Solde insuffisant", backendErr.Message)
}

func TestCustomerDirectory_LoyaltyConfig(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/loyalty-config", r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"pointsPerEuro": 2,
			"redemptionStep": 50,
			"discountPerRedemption": 2.5,
			"autoDiscountRate": 10,
			"autoDiscountThreshold": 30
		}`)
	})

	cfg, err := NewCustomerDirectory(client).LoyaltyConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.PointsPerEuro)
	assert.Equal(t, 50, cfg.RedemptionStep)
	assert.True(t, cfg.DiscountPerRedemption.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, cfg.AutoDiscountThreshold.Equal(decimal.NewFromInt(30)))
}

func TestCustomerDirectory_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	server.Close()

	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = NewCustomerDirectory(client).ListCustomers(context.Background())
	require.Error(t, err)

	var backendErr *service.BackendError
	assert.False(t, errors.As(err, &backendErr))
}
