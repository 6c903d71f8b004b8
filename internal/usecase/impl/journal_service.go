package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
)

// journalService implements the JournalUsecase interface.
type journalService struct {
	journalRepo repository.SettlementJournalRepository
	logger      *slog.Logger
}

// NewJournalService creates a new settlement journal service instance
func NewJournalService(journalRepo repository.SettlementJournalRepository, logger *slog.Logger) usecase.JournalUsecase {
	return &journalService{
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// RecordSettlement journals a settlement event once per order
func (s *journalService) RecordSettlement(ctx context.Context, event *service.SettlementEvent) error {
	logger := deliverycontext.Logger(ctx, s.logger)

	if event == nil {
		return domainerrors.NewValidationError("event", "settlement event is empty")
	}

	record, err := toSettlementRecord(event)
	if err != nil {
		return err
	}

	created, err := s.journalRepo.Record(ctx, record)
	if err != nil {
		return errors.Wrap(err, "failed to record settlement")
	}

	if !created {
		logger.Info("Settlement already journaled, ignoring replay", "order_id", record.OrderID)

		return nil
	}

	logger.Info("Settlement journaled",
		"order_id", record.OrderID,
		"table", record.TableNumber,
		"total", record.TotalAmount.StringFixed(moneyPlaces),
	)

	return nil
}

// ListSettlements returns journal entries settled at or after since
func (s *journalService) ListSettlements(ctx context.Context, since time.Time) ([]*entity.SettlementRecord, error) {
	records, err := s.journalRepo.ListSince(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settlements")
	}

	return records, nil
}

func toSettlementRecord(event *service.SettlementEvent) (*entity.SettlementRecord, error) {
	orderID := strings.TrimSpace(event.OrderID)
	if orderID == "" {
		return nil, domainerrors.NewValidationError("order_id", "order id is required")
	}
	if event.TableNumber < 1 {
		return nil, domainerrors.NewValidationError("table_number", "table number must be positive")
	}

	method := entity.PaymentMethod(event.PaymentMethod)
	if !method.IsValid() {
		return nil, domainerrors.NewValidationError("payment_method", "unknown payment method")
	}

	settledAt := event.SettledAt
	if settledAt.IsZero() {
		settledAt = time.Now()
	}

	return &entity.SettlementRecord{
		OrderID:        orderID,
		DraftID:        event.DraftID,
		TableNumber:    event.TableNumber,
		SalespersonID:  event.SalespersonID,
		PaymentMethod:  method,
		CustomerID:     event.CustomerID,
		TotalAmount:    event.TotalAmount.Round(moneyPlaces),
		DiscountAmount: event.DiscountAmount.Round(moneyPlaces),
		PointsRedeemed: event.PointsRedeemed,
		PointsEarned:   event.PointsEarned,
		SettledAt:      settledAt,
		RecordedAt:     time.Now(),
	}, nil
}
