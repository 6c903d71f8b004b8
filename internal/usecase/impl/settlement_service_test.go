package impl

import (
	"context"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockRepo "pos/internal/mocks/repository"
	mockSvc "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settlementServiceFixture struct {
	service   usecase.SettlementUsecase
	orders    *mockSvc.MockOrderGateway
	directory *mockSvc.MockCustomerDirectory
	tableRepo *mockRepo.MockTableRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestSettlementService(t *testing.T) settlementServiceFixture {
	orders := mockSvc.NewMockOrderGateway(t)
	directory := mockSvc.NewMockCustomerDirectory(t)
	tableRepo := mockRepo.NewMockTableRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return settlementServiceFixture{
		service:   NewSettlementService(orders, directory, tableRepo, publisher, newDiscardLogger()),
		orders:    orders,
		directory: directory,
		tableRepo: tableRepo,
		publisher: publisher,
	}
}

func settlingDraft(customer *entity.Customer) *entity.TransactionDraft {
	draft := entity.NewTransactionDraft(7, "sp-1", testTable(7, burger, burger, soda).Cart)
	if customer != nil {
		draft.Customer = entity.NewCustomerSnapshot(*customer)
	}
	draft.PaymentMethod = entity.PaymentMethodCard

	return draft
}

func TestBuildOrderRequest_MinimalPayload(t *testing.T) {
	draft := settlingDraft(nil)

	req := BuildOrderRequest(draft)

	assert.Equal(t, "sp-1", req.SalespersonID)
	assert.Equal(t, 7, req.TableNumber)
	assert.Equal(t, entity.PaymentMethodCard, req.PaymentMethod)
	assert.Nil(t, req.CustomerID)
	assert.Nil(t, req.DiscountReason)
	assert.True(t, req.DiscountAmount.IsZero())
	assert.Equal(t, []entity.OrderItem{{ID: burger.ID, Quantity: 2}, {ID: soda.ID, Quantity: 1}}, req.Items)
}

func TestBuildOrderRequest_RoundsDiscountAndCarriesCustomer(t *testing.T) {
	draft := settlingDraft(&entity.Customer{ID: "c1", LoyaltyPoints: 250})
	draft.DiscountAmount = decimal.RequireFromString("2.8333333")
	draft.DiscountReason = "Discount 10% (-2.83€)"

	req := BuildOrderRequest(draft)

	require.NotNil(t, req.CustomerID)
	assert.Equal(t, "c1", *req.CustomerID)
	require.NotNil(t, req.DiscountReason)
	assert.Equal(t, "Discount 10% (-2.83€)", *req.DiscountReason)
	assert.Equal(t, "2.83", req.DiscountAmount.String())
}

func TestSettlementService_Settle_WithCustomer(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	draft := settlingDraft(&entity.Customer{ID: "c1", LoyaltyPoints: 250})
	order := &entity.CertifiedOrder{ID: "o-1", TotalAmount: decimal.RequireFromString("26.60")}

	fx.orders.EXPECT().SubmitOrder(ctx, mock.AnythingOfType("*entity.OrderRequest")).Return(order, nil)
	fx.directory.EXPECT().FindByID(ctx, "c1").Return(&entity.Customer{ID: "c1", LoyaltyPoints: 300}, nil)
	fx.tableRepo.EXPECT().Release(ctx, 7).Return(nil)
	fx.publisher.EXPECT().
		PublishSettlementEvent(ctx, mock.MatchedBy(func(e *service.SettlementEvent) bool {
			return e.OrderID == "o-1" && e.PointsEarned == 50 && e.CustomerID == "c1"
		})).
		Return(nil)

	result, err := fx.service.Settle(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, order, result.Order)
	assert.Equal(t, 50, result.PointsEarned)
	assert.Nil(t, result.Warning)
}

func TestSettlementService_Settle_PointsEarnedNeverNegative(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	draft := settlingDraft(&entity.Customer{ID: "c1", LoyaltyPoints: 250})

	fx.orders.EXPECT().SubmitOrder(ctx, mock.Anything).Return(&entity.CertifiedOrder{ID: "o-2"}, nil)
	fx.directory.EXPECT().FindByID(ctx, "c1").Return(&entity.Customer{ID: "c1", LoyaltyPoints: 80}, nil)
	fx.tableRepo.EXPECT().Release(ctx, 7).Return(nil)
	fx.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Settle(ctx, draft)
	require.NoError(t, err)
	assert.Zero(t, result.PointsEarned)
}

func TestSettlementService_Settle_RefetchFailureIsWarning(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	draft := settlingDraft(&entity.Customer{ID: "c1", LoyaltyPoints: 250})

	fx.orders.EXPECT().SubmitOrder(ctx, mock.Anything).Return(&entity.CertifiedOrder{ID: "o-3"}, nil)
	fx.directory.EXPECT().FindByID(ctx, "c1").Return(nil, errors.New("timeout"))
	fx.tableRepo.EXPECT().Release(ctx, 7).Return(nil)
	fx.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Settle(ctx, draft)
	require.NoError(t, err)
	assert.Zero(t, result.PointsEarned)
	require.NotNil(t, result.Warning)
	assert.Equal(t, "c1", result.Warning.CustomerID)
}

func TestSettlementService_Settle_WithoutCustomerSkipsRefetch(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()

	fx.orders.EXPECT().SubmitOrder(ctx, mock.Anything).Return(&entity.CertifiedOrder{ID: "o-4"}, nil)
	fx.tableRepo.EXPECT().Release(ctx, 7).Return(nil)
	fx.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := fx.service.Settle(ctx, settlingDraft(nil))
	require.NoError(t, err)
	assert.Equal(t, "o-4", result.Order.ID)
}

func TestSettlementService_Settle_ReleaseFailureKeepsReceipt(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()

	fx.orders.EXPECT().SubmitOrder(ctx, mock.Anything).Return(&entity.CertifiedOrder{ID: "o-5"}, nil)
	fx.tableRepo.EXPECT().Release(ctx, 7).Return(errors.New("database error"))
	fx.publisher.EXPECT().PublishSettlementEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Settle(ctx, settlingDraft(nil))
	require.NoError(t, err)
	assert.Equal(t, "o-5", result.Order.ID)
}

func TestSettlementService_Settle_BackendRejection(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()

	fx.orders.EXPECT().
		SubmitOrder(ctx, mock.Anything).
		Return(nil, &service.BackendError{StatusCode: 400, Message: "Insufficient stock for Burger"})

	_, err := fx.service.Settle(ctx, settlingDraft(nil))

	var sErr *domainerrors.SettlementError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "Insufficient stock for Burger", sErr.Message())
	assert.Equal(t, 400, sErr.StatusCode)
	fx.tableRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestSettlementService_Settle_NetworkFailureUsesGenericMessage(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()

	fx.orders.EXPECT().SubmitOrder(ctx, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := fx.service.Settle(ctx, settlingDraft(nil))

	var sErr *domainerrors.SettlementError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, domainerrors.DefaultSettlementMessage, sErr.Message())
}
