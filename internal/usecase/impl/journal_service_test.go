package impl

import (
	"context"
	"testing"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/infra/persistence/memory"
	mockRepo "pos/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSettlementEvent(orderID string) *service.SettlementEvent {
	return &service.SettlementEvent{
		DraftID:        "d-1",
		OrderID:        orderID,
		TableNumber:    3,
		SalespersonID:  "s-1",
		PaymentMethod:  string(entity.PaymentMethodCard),
		CustomerID:     "c-1",
		TotalAmount:    price("45.504"),
		DiscountAmount: price("5"),
		PointsRedeemed: 100,
		PointsEarned:   45,
		SettledAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func withEvent(orderID string, mutate func(*service.SettlementEvent)) *service.SettlementEvent {
	event := testSettlementEvent(orderID)
	mutate(event)

	return event
}

func TestJournalService_RecordSettlement(t *testing.T) {
	repo := memory.NewSettlementJournalRepository()
	svc := NewJournalService(repo, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, svc.RecordSettlement(ctx, testSettlementEvent("o-1")))

	// Replays are accepted without creating a second entry
	replay := testSettlementEvent("o-1")
	replay.TotalAmount = price("1")
	require.NoError(t, svc.RecordSettlement(ctx, replay))

	records, err := svc.ListSettlements(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "o-1", record.OrderID)
	assert.Equal(t, entity.PaymentMethodCard, record.PaymentMethod)
	assert.True(t, record.TotalAmount.Equal(price("45.50")))
	assert.Equal(t, 45, record.PointsEarned)
	assert.False(t, record.RecordedAt.IsZero())
}

func TestJournalService_RecordSettlement_Invalid(t *testing.T) {
	svc := NewJournalService(memory.NewSettlementJournalRepository(), newDiscardLogger())

	tests := []struct {
		name  string
		event *service.SettlementEvent
		field string
	}{
		{"nil event", nil, "event"},
		{"missing order id", testSettlementEvent(" "), "order_id"},
		{"bad table", withEvent("o-2", func(e *service.SettlementEvent) { e.TableNumber = 0 }), "table_number"},
		{"bad method", withEvent("o-3", func(e *service.SettlementEvent) { e.PaymentMethod = "CHEQUE" }), "payment_method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RecordSettlement(context.Background(), tt.event)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestJournalService_RecordSettlement_RepositoryError(t *testing.T) {
	repo := mockRepo.NewMockSettlementJournalRepository(t)
	repo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, errors.New("connection reset"))

	svc := NewJournalService(repo, newDiscardLogger())

	err := svc.RecordSettlement(context.Background(), testSettlementEvent("o-1"))
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestJournalService_ListSettlements_Since(t *testing.T) {
	repo := mockRepo.NewMockSettlementJournalRepository(t)
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListSince(mock.Anything, since).Return([]*entity.SettlementRecord{{OrderID: "o-1"}}, nil)

	records, err := NewJournalService(repo, newDiscardLogger()).ListSettlements(context.Background(), since)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
