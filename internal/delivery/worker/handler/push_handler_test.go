package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/constants"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/infra/persistence/memory"
	"pos/internal/mocks/usecase"
	"pos/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(env string, provider string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	if provider != "" {
		cfg.PubSub = &config.PubSubConfig{Provider: provider}
	}

	return cfg
}

func settlementEvent(orderID string) service.SettlementEvent {
	return service.SettlementEvent{
		DraftID:        "draft-1",
		OrderID:        orderID,
		TableNumber:    4,
		SalespersonID:  "sp-1",
		PaymentMethod:  "CB",
		TotalAmount:    decimal.RequireFromString("42.50"),
		DiscountAmount: decimal.RequireFromString("2.00"),
		PointsEarned:   42,
		SettledAt:      time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, data []byte, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/settlements"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func eventBody(t *testing.T, event service.SettlementEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return pushBody(t, data, attributes)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: constants.EnvProduction, provider: constants.PubSubProviderGoogle, want: true},
		{name: "google locally", env: constants.EnvLocal, provider: constants.PubSubProviderGoogle, want: false},
		{name: "google in develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle, want: false},
		{name: "local provider in production", env: constants.EnvProduction, provider: constants.PubSubProviderLocal, want: false},
		{name: "no pubsub", env: constants.EnvProduction, provider: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPushHandler(PushHandlerParams{
				Config: newTestConfig(tt.env, tt.provider),
				Logger: newTestLogger(),
			})
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestHandlePush_JournalsOnceAcrossRedelivery(t *testing.T) {
	repo := memory.NewSettlementJournalRepository()
	h := NewPushHandler(PushHandlerParams{
		Config:    newTestConfig(constants.EnvLocal, constants.PubSubProviderLocal),
		Logger:    newTestLogger(),
		JournalUC: impl.NewJournalService(repo, newTestLogger()),
	})

	body := eventBody(t, settlementEvent("order-1"), nil)

	assert.Equal(t, http.StatusOK, doPush(h, body).Code)
	assert.Equal(t, http.StatusOK, doPush(h, body).Code)

	records, err := repo.ListSince(context.Background(), time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "order-1", records[0].OrderID)
	assert.True(t, decimal.RequireFromString("42.50").Equal(records[0].TotalAmount))
}

func TestHandlePush_PropagatesRequestID(t *testing.T) {
	journalUC := usecase.NewMockJournalUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    newTestConfig(constants.EnvLocal, ""),
		Logger:    newTestLogger(),
		JournalUC: journalUC,
	})

	journalUC.EXPECT().
		RecordSettlement(mock.Anything, mock.AnythingOfType("*service.SettlementEvent")).
		Run(func(ctx context.Context, event *service.SettlementEvent) {
			assert.Equal(t, "req-from-attributes", deliverycontext.RequestID(ctx))
			assert.Equal(t, "order-2", event.OrderID)
		}).
		Return(nil)

	rec := doPush(h, eventBody(t, settlementEvent("order-2"), map[string]string{"request_id": "req-from-attributes"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		journalErr error
		wantStatus int
	}{
		{name: "validation error is dropped", journalErr: domainerrors.NewValidationError("order_id", "order id is required"), wantStatus: http.StatusOK},
		{name: "storage error is retried", journalErr: assert.AnError, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journalUC := usecase.NewMockJournalUsecase(t)
			h := NewPushHandler(PushHandlerParams{
				Config:    newTestConfig(constants.EnvLocal, ""),
				Logger:    newTestLogger(),
				JournalUC: journalUC,
			})

			journalUC.EXPECT().RecordSettlement(mock.Anything, mock.Anything).Return(tt.journalErr)

			rec := doPush(h, eventBody(t, settlementEvent("order-3"), nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config:    newTestConfig(constants.EnvLocal, ""),
		Logger:    newTestLogger(),
		JournalUC: usecase.NewMockJournalUsecase(t),
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"%%%","messageId":"m"}}`},
		{name: "not an event", body: pushBody(t, []byte("plain text"), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, doPush(h, tt.body).Code)
		})
	}
}

func TestHandlePush_RejectsMissingTokenWhenVerifying(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config:    newTestConfig(constants.EnvProduction, constants.PubSubProviderGoogle),
		Logger:    newTestLogger(),
		JournalUC: usecase.NewMockJournalUsecase(t),
	})

	rec := doPush(h, eventBody(t, settlementEvent("order-4"), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(domainerrors.NewValidationError("table_number", "must be positive")))
	assert.True(t, IsRetryable(assert.AnError))
}

func TestExtractRequestID(t *testing.T) {
	event := &service.SettlementEvent{RequestID: "from-event"}

	assert.Equal(t, "from-attr", extractRequestID(context.Background(), map[string]string{"request_id": "from-attr"}, event))
	assert.Equal(t, "from-event", extractRequestID(context.Background(), nil, event))

	ctx, _ := deliverycontext.WithScope(context.Background(), "from-ctx", nil)
	assert.Equal(t, "from-ctx", extractRequestID(ctx, nil, &service.SettlementEvent{}))

	assert.NotEmpty(t, extractRequestID(context.Background(), nil, &service.SettlementEvent{}))
}

func TestVerifyPubSubToken_HeaderErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
