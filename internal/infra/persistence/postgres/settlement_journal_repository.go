package postgres

import (
	"context"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settlementJournalRepository implements the repository.SettlementJournalRepository interface.
type settlementJournalRepository struct {
	db *gorm.DB
}

// NewSettlementJournalRepository is the constructor for settlementJournalRepository.
func NewSettlementJournalRepository(db *gorm.DB) repository.SettlementJournalRepository {
	return &settlementJournalRepository{
		db: db,
	}
}

// Record inserts the record; an existing order id is left untouched.
func (repo *settlementJournalRepository) Record(ctx context.Context, record *entity.SettlementRecord) (bool, error) {
	recordM := fromSettlementRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(recordM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return false, domainerrors.NewValidationError("settlement", "missing required settlement information")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record settlement")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	record.RecordedAt = recordM.RecordedAt

	return true, nil
}

// ListSince returns records settled at or after since, oldest first.
func (repo *settlementJournalRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.SettlementRecord, error) {
	var recordModels []*model.SettlementRecordModel

	if err := repo.db.WithContext(ctx).
		Where("settled_at >= ?", since).
		Order("settled_at ASC, order_id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settlements")
	}

	records := make([]*entity.SettlementRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toSettlementRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toSettlementRecordDomain converts a GORM SettlementRecordModel to a domain SettlementRecord entity.
func toSettlementRecordDomain(data *model.SettlementRecordModel) *entity.SettlementRecord {
	if data == nil {
		return nil
	}

	record := &entity.SettlementRecord{
		OrderID:        data.OrderID,
		DraftID:        data.DraftID,
		TableNumber:    data.TableNumber,
		SalespersonID:  data.SalespersonID,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		TotalAmount:    data.TotalAmount,
		DiscountAmount: data.DiscountAmount,
		PointsRedeemed: data.PointsRedeemed,
		PointsEarned:   data.PointsEarned,
		SettledAt:      data.SettledAt,
		RecordedAt:     data.RecordedAt,
	}
	if data.CustomerID != nil {
		record.CustomerID = *data.CustomerID
	}

	return record
}

// fromSettlementRecordDomain converts a domain SettlementRecord entity to a GORM SettlementRecordModel.
func fromSettlementRecordDomain(data *entity.SettlementRecord) *model.SettlementRecordModel {
	if data == nil {
		return nil
	}

	recordM := &model.SettlementRecordModel{
		OrderID:        data.OrderID,
		DraftID:        data.DraftID,
		TableNumber:    data.TableNumber,
		SalespersonID:  data.SalespersonID,
		PaymentMethod:  string(data.PaymentMethod),
		TotalAmount:    data.TotalAmount,
		DiscountAmount: data.DiscountAmount,
		PointsRedeemed: data.PointsRedeemed,
		PointsEarned:   data.PointsEarned,
		SettledAt:      data.SettledAt,
	}
	if data.CustomerID != "" {
		customerID := data.CustomerID
		recordM.CustomerID = &customerID
	}

	return recordM
}
