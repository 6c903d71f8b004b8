package impl

import (
	"context"
	"testing"

	"pos/internal/domain/checkout"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	mockRepo "pos/internal/mocks/repository"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tableServiceFixture struct {
	service     usecase.TableUsecase
	tableRepo   *mockRepo.MockTableRepository
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestTableService(t *testing.T) tableServiceFixture {
	tableRepo := mockRepo.NewMockTableRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	return tableServiceFixture{
		service:     NewTableService(tableRepo, sessionRepo, NewTableLocks(), newDiscardLogger()),
		tableRepo:   tableRepo,
		sessionRepo: sessionRepo,
	}
}

func TestTableService_OpenTable(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.tableRepo.EXPECT().Open(ctx, 3).Return(&entity.Table{Number: 3}, nil)

	table, err := fx.service.OpenTable(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Number)
	assert.True(t, table.Cart.IsEmpty())
}

func TestTableService_OpenTable_InvalidNumber(t *testing.T) {
	fx := createTestTableService(t)

	_, err := fx.service.OpenTable(context.Background(), 0)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "table_number", vErr.Field)
}

func TestTableService_ListOpenTables_SortedByNumber(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.tableRepo.EXPECT().List(ctx).Return([]*entity.Table{{Number: 12}, {Number: 2}, {Number: 7}}, nil)

	tables, err := fx.service.ListOpenTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 3)
	assert.Equal(t, []int{2, 7, 12}, []int{tables[0].Number, tables[1].Number, tables[2].Number})
}

func TestTableService_GetTable_NotFound(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.tableRepo.EXPECT().Find(ctx, 9).Return(nil, repository.ErrTableNotFound)

	_, err := fx.service.GetTable(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrTableNotFound)
}

func TestTableService_AddItem_MergesQuantity(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	existing := testTable(5, burger)

	fx.sessionRepo.EXPECT().Get(ctx, 5).Return(checkout.Session{}, repository.ErrSessionNotFound)
	fx.tableRepo.EXPECT().Find(ctx, 5).Return(existing, nil)
	fx.tableRepo.EXPECT().
		SaveCart(ctx, 5, mock.MatchedBy(func(cart entity.Cart) bool {
			return len(cart.Lines) == 1 && cart.Lines[0].Quantity == 2
		})).
		RunAndReturn(func(_ context.Context, number int, cart entity.Cart) (*entity.Table, error) {
			return &entity.Table{Number: number, Cart: cart}, nil
		})

	table, err := fx.service.AddItem(ctx, 5, burger)
	require.NoError(t, err)
	assert.True(t, table.Cart.Total().Equal(price("25")))
	assert.Equal(t, 1, existing.Cart.Lines[0].Quantity)
}

func TestTableService_AddItem_Validation(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, 5, entity.Product{ID: " "})
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = fx.service.AddItem(ctx, 5, entity.Product{ID: "p1", UnitPrice: price("-1")})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "product.unit_price", vErr.Field)
}

func TestTableService_AddItem_LockedDuringCheckout(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().Get(ctx, 5).Return(checkout.Session{TableNumber: 5, State: checkout.StateAwaitingPaymentMethod}, nil)

	_, err := fx.service.AddItem(ctx, 5, burger)
	assert.ErrorIs(t, err, domainerrors.ErrTableLocked)
}

func TestTableService_RemoveItem_AbsentProductIsNoop(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	existing := testTable(2, burger, soda)

	fx.sessionRepo.EXPECT().Get(ctx, 2).Return(checkout.Session{}, repository.ErrSessionNotFound)
	fx.tableRepo.EXPECT().Find(ctx, 2).Return(existing, nil)
	fx.tableRepo.EXPECT().
		SaveCart(ctx, 2, existing.Cart).
		Return(existing, nil)

	table, err := fx.service.RemoveItem(ctx, 2, "p-unknown")
	require.NoError(t, err)
	assert.Len(t, table.Cart.Lines, 2)
}

func TestTableService_RemoveItem_DeletesLastUnit(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().Get(ctx, 2).Return(checkout.Session{}, repository.ErrSessionNotFound)
	fx.tableRepo.EXPECT().Find(ctx, 2).Return(testTable(2, burger, soda), nil)
	fx.tableRepo.EXPECT().
		SaveCart(ctx, 2, mock.Anything).
		RunAndReturn(func(_ context.Context, number int, cart entity.Cart) (*entity.Table, error) {
			return &entity.Table{Number: number, Cart: cart}, nil
		})

	table, err := fx.service.RemoveItem(ctx, 2, soda.ID)
	require.NoError(t, err)
	require.Len(t, table.Cart.Lines, 1)
	assert.Equal(t, burger.ID, table.Cart.Lines[0].ProductID)
}

func TestTableService_SaveCartError(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().Get(ctx, 2).Return(checkout.Session{}, repository.ErrSessionNotFound)
	fx.tableRepo.EXPECT().Find(ctx, 2).Return(testTable(2), nil)
	fx.tableRepo.EXPECT().SaveCart(ctx, 2, mock.Anything).Return(nil, errors.New("database error"))

	_, err := fx.service.AddItem(ctx, 2, soda)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save cart")
}
