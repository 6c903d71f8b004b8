package postgres

import (
	"context"

	"pos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables backing the open-table store and the settlement journal.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.TableModel{}, &model.CartLineModel{}, &model.SettlementRecordModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate table store")
	}

	return nil
}
