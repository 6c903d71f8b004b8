package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/infra/persistence/memory"
	"pos/internal/mocks/usecase"
	"pos/internal/usecase/impl"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func settlementDelivery(t *testing.T, orderID string) amqp.Delivery {
	t.Helper()

	body, err := json.Marshal(service.SettlementEvent{
		DraftID:       "draft-1",
		OrderID:       orderID,
		TableNumber:   3,
		SalespersonID: "sp-1",
		PaymentMethod: "CASH",
		TotalAmount:   decimal.RequireFromString("18.00"),
		PointsEarned:  18,
		SettledAt:     time.Date(2026, 10, 16, 13, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return amqp.Delivery{
		MessageId:   "draft-1",
		DeliveryTag: 1,
		Headers:     amqp.Table{"request_id": "req-1"},
		Body:        body,
	}
}

func TestNewRabbitMQConsumer_RequiresURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewRabbitMQConsumer(RabbitMQConsumerParams{
		Lc:     lc,
		Cfg:    &config.Config{},
		Logger: newTestLogger(),
	})
	require.Error(t, err)

	cfg := &config.Config{RabbitMQ: &config.RabbitMQConfig{URL: "amqp://localhost:5672/", Queue: "q", Prefetch: 1}}
	consumer, err := NewRabbitMQConsumer(RabbitMQConsumerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: newTestLogger(),
	})
	require.NoError(t, err)
	assert.NotNil(t, consumer)

	// Stopping before Serve has dialed is a no-op.
	lc.RequireStart().RequireStop()
}

func TestRabbitMQConsumer_ProcessJournalsOnce(t *testing.T) {
	repo := memory.NewSettlementJournalRepository()
	c := &rabbitMQConsumer{
		logger:    newTestLogger(),
		journalUC: impl.NewJournalService(repo, newTestLogger()),
	}

	d := settlementDelivery(t, "order-1")
	assert.Equal(t, dispositionAck, c.process(context.Background(), d))
	assert.Equal(t, dispositionAck, c.process(context.Background(), d))

	records, err := repo.ListSince(context.Background(), time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CASH", string(records[0].PaymentMethod))
}

func TestRabbitMQConsumer_ProcessDispositions(t *testing.T) {
	tests := []struct {
		name       string
		journalErr error
		want       disposition
	}{
		{name: "success acks", journalErr: nil, want: dispositionAck},
		{name: "invalid event acks", journalErr: domainerrors.NewValidationError("order_id", "order id is required"), want: dispositionAck},
		{name: "storage failure requeues", journalErr: assert.AnError, want: dispositionRequeue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journalUC := usecase.NewMockJournalUsecase(t)
			c := &rabbitMQConsumer{logger: newTestLogger(), journalUC: journalUC}

			journalUC.EXPECT().
				RecordSettlement(mock.Anything, mock.Anything).
				Run(func(ctx context.Context, _ *service.SettlementEvent) {
					assert.Equal(t, "req-1", deliverycontext.RequestID(ctx))
				}).
				Return(tt.journalErr)

			assert.Equal(t, tt.want, c.process(context.Background(), settlementDelivery(t, "order-2")))
		})
	}
}

func TestRabbitMQConsumer_MalformedBodyIsDeadLettered(t *testing.T) {
	c := &rabbitMQConsumer{logger: newTestLogger(), journalUC: usecase.NewMockJournalUsecase(t)}

	got := c.process(context.Background(), amqp.Delivery{Body: []byte("not json")})
	assert.Equal(t, dispositionDeadLetter, got)
}

func TestRabbitMQConsumer_SettleWithoutChannelDoesNotPanic(t *testing.T) {
	c := &rabbitMQConsumer{logger: newTestLogger()}

	assert.NotPanics(t, func() {
		c.settle(amqp.Delivery{}, dispositionAck)
		c.settle(amqp.Delivery{}, dispositionRequeue)
		c.settle(amqp.Delivery{}, dispositionDeadLetter)
	})
}

func TestDeliveryRequestID(t *testing.T) {
	event := &service.SettlementEvent{RequestID: "from-event"}

	assert.Equal(t, "from-header", deliveryRequestID(amqp.Delivery{Headers: amqp.Table{"request_id": "from-header"}, CorrelationId: "corr"}, event))
	assert.Equal(t, "corr", deliveryRequestID(amqp.Delivery{CorrelationId: "corr"}, event))
	assert.Equal(t, "from-event", deliveryRequestID(amqp.Delivery{}, event))
	assert.NotEmpty(t, deliveryRequestID(amqp.Delivery{}, &service.SettlementEvent{}))
}
