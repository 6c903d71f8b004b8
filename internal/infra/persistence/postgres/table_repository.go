// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// tableRepository implements the repository.TableRepository interface.
type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository is the constructor for tableRepository.
func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &tableRepository{
		db: db,
	}
}

// Open creates the table with an empty cart, or returns the existing one.
func (repo *tableRepository) Open(ctx context.Context, number int) (*entity.Table, error) {
	now := time.Now()
	tableM := &model.TableModel{Number: number, OpenedAt: now, UpdatedAt: now}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tableM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.NewValidationError("table", "missing required table information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to open table")
	}

	return repo.Find(ctx, number)
}

// Find retrieves an open table by its number.
func (repo *tableRepository) Find(ctx context.Context, number int) (*entity.Table, error) {
	var tableM model.TableModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("number = ?", number).
		First(&tableM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table by number")
	}

	return toTableDomain(&tableM), nil
}

// List returns all open tables ordered by number.
func (repo *tableRepository) List(ctx context.Context) ([]*entity.Table, error) {
	var tableModels []*model.TableModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("number ASC").
		Find(&tableModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	tables := make([]*entity.Table, 0, len(tableModels))
	for _, tableM := range tableModels {
		tables = append(tables, toTableDomain(tableM))
	}

	return tables, nil
}

// SaveCart replaces the cart lines of an open table in a single transaction.
func (repo *tableRepository) SaveCart(ctx context.Context, number int, cart entity.Cart) (*entity.Table, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TableModel{}).
			Where("number = ?", number).
			Update("updated_at", time.Now())
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to touch table")
		}
		if result.RowsAffected == 0 {
			return repository.ErrTableNotFound
		}

		if err := tx.Where("table_number = ?", number).
			Delete(&model.CartLineModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart lines")
		}

		lines := fromCartDomain(number, cart)
		if len(lines) == 0 {
			return nil
		}

		if err := tx.Create(&lines).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.NewValidationError("cart", "duplicate product line")
			}
			if isCheckConstraintViolation(err) {
				return domainerrors.NewValidationError("quantity", "quantity must be positive")
			}
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrTableNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart lines")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return repo.Find(ctx, number)
}

// Release removes the table and its cart from the open set.
func (repo *tableRepository) Release(ctx context.Context, number int) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_number = ?", number).
			Delete(&model.CartLineModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete cart lines")
		}

		if err := tx.Where("number = ?", number).
			Delete(&model.TableModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to release table")
		}

		return nil
	})
}

// --- Mapper Functions ---

// toTableDomain converts a GORM TableModel to a domain Table entity.
func toTableDomain(data *model.TableModel) *entity.Table {
	if data == nil {
		return nil
	}

	table := &entity.Table{
		Number:    data.Number,
		OpenedAt:  data.OpenedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Lines) > 0 {
		table.Cart.Lines = make([]entity.CartLine, 0, len(data.Lines))
		for _, line := range data.Lines {
			table.Cart.Lines = append(table.Cart.Lines, entity.CartLine{
				ProductID: line.ProductID,
				Name:      line.Name,
				UnitPrice: line.UnitPrice,
				Quantity:  line.Quantity,
			})
		}
	}

	return table
}

// fromCartDomain converts a domain Cart to GORM CartLineModels, keeping line order.
func fromCartDomain(number int, cart entity.Cart) []model.CartLineModel {
	lines := make([]model.CartLineModel, 0, len(cart.Lines))
	for i, line := range cart.Lines {
		lines = append(lines, model.CartLineModel{
			TableNumber: number,
			Position:    i,
			ProductID:   line.ProductID,
			Name:        line.Name,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		})
	}

	return lines
}
