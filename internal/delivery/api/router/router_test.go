package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/delivery/api/validator"
	"pos/internal/delivery/middleware"
	"pos/internal/domain/checkout"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/loyalty"
	mockusecase "pos/internal/mocks/usecase"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	echo       *echo.Echo
	tableUC    *mockusecase.MockTableUsecase
	customerUC *mockusecase.MockCustomerUsecase
	checkoutUC *mockusecase.MockCheckoutUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		echo:       echo.New(),
		tableUC:    mockusecase.NewMockTableUsecase(t),
		customerUC: mockusecase.NewMockCustomerUsecase(t),
		checkoutUC: mockusecase.NewMockCheckoutUsecase(t),
	}

	env.echo.Validator = validator.New()
	env.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	env.echo.Use(middleware.NewRequestIDMiddleware(logger).Process)

	r := NewRouter(RouterParams{
		TableHandler:    handler.NewTableHandler(handler.TableHandlerParams{TableUC: env.tableUC, Logger: logger}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: env.customerUC, Logger: logger}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: env.checkoutUC, Logger: logger}),
	})
	r.RegisterRoutes(env.echo)

	return env
}

func (env *testEnv) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	var env2 envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env2))
	}

	return rec, env2
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.Equal(t, body.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestOpenTable(t *testing.T) {
	env := newTestEnv(t)
	env.tableUC.EXPECT().OpenTable(mock.Anything, 3).Return(&entity.Table{Number: 3}, nil)

	rec, body := env.do(t, http.MethodPost, "/tables", `{"number": 3}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var table map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &table))
	assert.EqualValues(t, 3, table["number"])
	assert.Equal(t, "0", table["total"])
	assert.EqualValues(t, 0, table["item_count"])
}

func TestOpenTable_Invalid(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/tables", `{"number": 0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestGetTable_BadNumber(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/tables/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "number", body.Error.Details)
}

func TestAddItem(t *testing.T) {
	env := newTestEnv(t)

	table := &entity.Table{Number: 2}
	table.Cart.Add(entity.Product{ID: "p-1", Name: "Burger", UnitPrice: decimal.RequireFromString("12.50")})
	table.Cart.Add(entity.Product{ID: "p-1", Name: "Burger", UnitPrice: decimal.RequireFromString("12.50")})

	env.tableUC.EXPECT().
		AddItem(mock.Anything, 2, mock.MatchedBy(func(p entity.Product) bool {
			return p.ID == "p-1" && p.Name == "Burger" && p.UnitPrice.Equal(decimal.RequireFromString("12.5"))
		})).
		Return(table, nil)

	rec, body := env.do(t, http.MethodPost, "/tables/2/items", `{"product_id": "p-1", "name": "Burger", "unit_price": 12.50}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &resp))
	assert.Equal(t, "25", resp["total"])
	assert.EqualValues(t, 2, resp["item_count"])
}

func TestAddItem_TableLocked(t *testing.T) {
	env := newTestEnv(t)
	env.tableUC.EXPECT().AddItem(mock.Anything, 2, mock.Anything).Return(nil, domainerrors.ErrTableLocked)

	rec, body := env.do(t, http.MethodPost, "/tables/2/items", `{"product_id": "p-1", "name": "Burger", "unit_price": "1.00"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "TABLE_LOCKED", body.Error.Code)
}

func TestRemoveItem(t *testing.T) {
	env := newTestEnv(t)
	env.tableUC.EXPECT().RemoveItem(mock.Anything, 4, "p-9").Return(&entity.Table{Number: 4}, nil)

	rec, _ := env.do(t, http.MethodDelete, "/tables/4/items/p-9", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPay(t *testing.T) {
	env := newTestEnv(t)

	session := checkout.NewSession(5)
	session.State = checkout.StateAwaitingCustomerDecision
	env.checkoutUC.EXPECT().Pay(mock.Anything, 5, "s-1").Return(&session, nil)

	rec, body := env.do(t, http.MethodPost, "/tables/5/checkout", `{"salesperson_id": "s-1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp checkout.Session
	require.NoError(t, json.Unmarshal(body.Data, &resp))
	assert.Equal(t, checkout.StateAwaitingCustomerDecision, resp.State)
}

func TestPay_CheckoutInProgress(t *testing.T) {
	env := newTestEnv(t)
	env.checkoutUC.EXPECT().Pay(mock.Anything, 5, "s-1").Return(nil, domainerrors.ErrCheckoutInProgress)

	rec, body := env.do(t, http.MethodPost, "/tables/5/checkout", `{"salesperson_id": "s-1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CHECKOUT_IN_PROGRESS", body.Error.Code)
}

func TestQuote(t *testing.T) {
	env := newTestEnv(t)

	want := entity.DiscountState{PointsToRedeem: 200, Type: entity.DiscountTypePercent, Value: "10"}
	env.checkoutUC.EXPECT().Quote(mock.Anything, 1, want).Return(&loyalty.Quote{
		Subtotal:   decimal.NewFromInt(50),
		FinalTotal: decimal.NewFromInt(36),
	}, nil)

	rec, _ := env.do(t, http.MethodPost, "/tables/1/checkout/quote",
		`{"points_to_redeem": 200, "discount_type": "PERCENT", "discount_value": "10"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfirm_RedemptionRejected(t *testing.T) {
	env := newTestEnv(t)
	env.checkoutUC.EXPECT().Confirm(mock.Anything, 1, mock.Anything).Return(nil, &domainerrors.RedemptionError{
		CustomerID: "c-1",
		Points:     150,
		Reason:     "Points must be a multiple of 100",
	})

	rec, body := env.do(t, http.MethodPost, "/tables/1/checkout/confirm", `{"points_to_redeem": 150}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "REDEMPTION_REJECTED", body.Error.Code)
	assert.Equal(t, "Points must be a multiple of 100", body.Error.Message)
}

func TestConfirm_InvalidDiscountType(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/tables/1/checkout/confirm", `{"discount_type": "BOGO"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChoosePayment_InvalidMethod(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/tables/1/checkout/payment", `{"payment_method": "CHEQUE"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestChoosePayment_SettlementFailed(t *testing.T) {
	env := newTestEnv(t)
	env.checkoutUC.EXPECT().ChoosePayment(mock.Anything, 1, entity.PaymentMethodCash).Return(nil, &domainerrors.SettlementError{
		ServerMessage: "Produit inconnu",
		StatusCode:    http.StatusBadRequest,
	})

	rec, body := env.do(t, http.MethodPost, "/tables/1/checkout/payment", `{"payment_method": "CASH"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SETTLEMENT_FAILED", body.Error.Code)
	assert.Equal(t, "Produit inconnu", body.Error.Message)
	assert.Nil(t, body.Error.Details)
}

func TestListCheckouts(t *testing.T) {
	env := newTestEnv(t)

	first := checkout.NewSession(2)
	second := checkout.NewSession(9)
	second.State = checkout.StateAwaitingPaymentMethod
	env.checkoutUC.EXPECT().ListSessions(mock.Anything).Return([]checkout.Session{first, second}, nil)

	rec, body := env.do(t, http.MethodGet, "/checkouts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []checkout.Session
	require.NoError(t, json.Unmarshal(body.Data, &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 2, resp[0].TableNumber)
	assert.Equal(t, checkout.StateAwaitingPaymentMethod, resp[1].State)
}

func TestCancelCheckout(t *testing.T) {
	env := newTestEnv(t)
	env.checkoutUC.EXPECT().Cancel(mock.Anything, 6).Return(nil)

	rec, _ := env.do(t, http.MethodDelete, "/tables/6/checkout", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetReceipt(t *testing.T) {
	env := newTestEnv(t)

	receipt := &usecase.Receipt{
		OrderID:     "o-1",
		TableNumber: 6,
		TotalAmount: decimal.RequireFromString("45.50"),
		QRCode:      []byte{0x89, 0x50, 0x4E, 0x47},
	}
	env.checkoutUC.EXPECT().Receipt(mock.Anything, 6).Return(receipt, nil).Twice()

	rec, body := env.do(t, http.MethodGet, "/tables/6/checkout/receipt", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &resp))
	assert.Equal(t, "o-1", resp["order_id"])
	assert.Equal(t, "45.5", resp["total_amount"])

	rec, _ = env.do(t, http.MethodGet, "/tables/6/checkout/receipt?format=png", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, receipt.QRCode, rec.Body.Bytes())
}

func TestCloseReceipt(t *testing.T) {
	env := newTestEnv(t)
	env.checkoutUC.EXPECT().CloseReceipt(mock.Anything, 6).Return(nil)

	rec, _ := env.do(t, http.MethodPost, "/tables/6/checkout/receipt/close", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSearchCustomers(t *testing.T) {
	env := newTestEnv(t)
	env.customerUC.EXPECT().Search(mock.Anything, "ann").Return([]entity.Customer{
		{ID: "c-1", Name: "Anne", LoyaltyPoints: 120},
	}, nil)

	rec, body := env.do(t, http.MethodGet, "/customers?q=ann", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var customers []entity.Customer
	require.NoError(t, json.Unmarshal(body.Data, &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, 120, customers[0].LoyaltyPoints)
}

func TestGetCustomer_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.customerUC.EXPECT().Get(mock.Anything, "nope").Return(nil, domainerrors.ErrCustomerNotFound)

	rec, body := env.do(t, http.MethodGet, "/customers/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", body.Error.Code)
}

func TestCreateCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.customerUC.EXPECT().
		Create(mock.Anything, &usecase.CreateCustomerInput{Name: "Ana", Phone: "0611"}).
		Return(&entity.Customer{ID: "c-9", Name: "Ana", Phone: "0611"}, nil)

	rec, _ := env.do(t, http.MethodPost, "/customers", `{"name": "Ana", "phone": "0611"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/customers", `{"name": "Ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLoyaltyConfig(t *testing.T) {
	env := newTestEnv(t)
	env.customerUC.EXPECT().LoyaltyConfig(mock.Anything).Return(entity.DefaultLoyaltyConfig())

	rec, body := env.do(t, http.MethodGet, "/customers/loyalty-config", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &cfg))
	assert.EqualValues(t, 100, cfg["redemptionStep"])
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
