// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/usecase"

	"github.com/pkg/errors"
)

// tableService implements the TableUsecase interface.
type tableService struct {
	tableRepo   repository.TableRepository
	sessionRepo repository.SessionRepository
	locks       *TableLocks
	logger      *slog.Logger
}

// NewTableService creates a new table service instance
func NewTableService(
	tableRepo repository.TableRepository,
	sessionRepo repository.SessionRepository,
	locks *TableLocks,
	logger *slog.Logger,
) usecase.TableUsecase {
	return &tableService{
		tableRepo:   tableRepo,
		sessionRepo: sessionRepo,
		locks:       locks,
		logger:      logger,
	}
}

// OpenTable opens the table with an empty cart
func (s *tableService) OpenTable(ctx context.Context, number int) (*entity.Table, error) {
	if err := validateTableNumber(number); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(number)
	defer unlock()

	table, err := s.tableRepo.Open(ctx, number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open table")
	}

	s.logger.Debug("Table opened", slog.Int("table", number))

	return table, nil
}

// ListOpenTables returns the open tables ordered by number
func (s *tableService) ListOpenTables(ctx context.Context) ([]*entity.Table, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	slices.SortFunc(tables, func(a, b *entity.Table) int {
		return a.Number - b.Number
	})

	return tables, nil
}

// GetTable returns an open table
func (s *tableService) GetTable(ctx context.Context, number int) (*entity.Table, error) {
	if err := validateTableNumber(number); err != nil {
		return nil, err
	}

	return s.findTable(ctx, number)
}

// AddItem adds one unit of the product to the cart
func (s *tableService) AddItem(ctx context.Context, number int, product entity.Product) (*entity.Table, error) {
	if err := validateTableNumber(number); err != nil {
		return nil, err
	}
	if strings.TrimSpace(product.ID) == "" {
		return nil, domainerrors.NewValidationError("product.id", "is required")
	}
	if product.UnitPrice.IsNegative() {
		return nil, domainerrors.NewValidationError("product.unit_price", "must not be negative")
	}

	return s.mutateCart(ctx, number, func(cart *entity.Cart) {
		cart.Add(product)
	})
}

// RemoveItem removes one unit of the product from the cart
func (s *tableService) RemoveItem(ctx context.Context, number int, productID string) (*entity.Table, error) {
	if err := validateTableNumber(number); err != nil {
		return nil, err
	}

	return s.mutateCart(ctx, number, func(cart *entity.Cart) {
		cart.Remove(productID)
	})
}

// mutateCart applies fn to the table's cart and persists the new snapshot.
func (s *tableService) mutateCart(ctx context.Context, number int, fn func(cart *entity.Cart)) (*entity.Table, error) {
	unlock := s.locks.Lock(number)
	defer unlock()

	if err := s.ensureNoCheckout(ctx, number); err != nil {
		return nil, err
	}

	table, err := s.findTable(ctx, number)
	if err != nil {
		return nil, err
	}

	cart := table.Cart.Clone()
	fn(&cart)

	updated, err := s.tableRepo.SaveCart(ctx, number, cart)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to save cart")
	}

	return updated, nil
}

func (s *tableService) ensureNoCheckout(ctx context.Context, number int) error {
	session, err := s.sessionRepo.Get(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load checkout session")
	}

	if session.State.InFlight() {
		return domainerrors.ErrTableLocked
	}

	return nil
}

func (s *tableService) findTable(ctx context.Context, number int) (*entity.Table, error) {
	table, err := s.tableRepo.Find(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return nil, domainerrors.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find table")
	}

	return table, nil
}

func validateTableNumber(number int) error {
	if number < 1 {
		return domainerrors.NewValidationError("table_number", "must be at least 1")
	}

	return nil
}
