package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for the checkout steps
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// PayRequest represents the request body for starting a checkout
type PayRequest struct {
	SalespersonID string `json:"salesperson_id" validate:"required"`
}

// SelectCustomerRequest represents the request body for associating a customer
type SelectCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
}

// DiscountRequest represents the operator's discount input
type DiscountRequest struct {
	PointsToRedeem int    `json:"points_to_redeem" validate:"min=0"`
	DiscountType   string `json:"discount_type" validate:"omitempty,oneof=PERCENT FIXED"`
	DiscountValue  string `json:"discount_value"`
}

func (r DiscountRequest) toState() entity.DiscountState {
	return entity.DiscountState{
		PointsToRedeem: r.PointsToRedeem,
		Type:           entity.DiscountType(r.DiscountType),
		Value:          r.DiscountValue,
	}
}

// PaymentRequest represents the request body for choosing a payment method
type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CB CASH CONTACTLESS"`
}

// Pay handles starting a checkout from the table's cart
func (h *CheckoutHandler) Pay(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.checkoutUC.Pay(c.Request().Context(), number, req.SalespersonID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// GetCheckout handles retrieving the checkout of a table
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.checkoutUC.GetSession(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// ListCheckouts handles listing the in-flight checkouts of all tables
func (h *CheckoutHandler) ListCheckouts(c echo.Context) error {
	sessions, err := h.checkoutUC.ListSessions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessions)
}

// CancelCheckout handles discarding the checkout of a table
func (h *CheckoutHandler) CancelCheckout(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.checkoutUC.Cancel(c.Request().Context(), number); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SelectCustomer handles associating a customer with the draft
func (h *CheckoutHandler) SelectCustomer(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SelectCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.checkoutUC.SelectCustomer(c.Request().Context(), number, req.CustomerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// ClearCustomer handles removing the customer from the draft
func (h *CheckoutHandler) ClearCustomer(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.checkoutUC.ClearCustomer(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Quote handles the live discount preview
func (h *CheckoutHandler) Quote(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.checkoutUC.Quote(c.Request().Context(), number, req.toState())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// Confirm handles redeeming points and committing the discount
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.checkoutUC.Confirm(c.Request().Context(), number, req.toState())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Skip handles moving to payment without customer or discount
func (h *CheckoutHandler) Skip(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.checkoutUC.Skip(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// ChoosePayment handles settling the draft with a payment method
func (h *CheckoutHandler) ChoosePayment(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.checkoutUC.ChoosePayment(c.Request().Context(), number, entity.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GetReceipt handles retrieving the receipt of a settled checkout
func (h *CheckoutHandler) GetReceipt(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.checkoutUC.Receipt(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "png" {
		if len(receipt.QRCode) == 0 {
			return response.NotFound(c, "QR_CODE_UNAVAILABLE", "Receipt QR code is not available")
		}

		return c.Blob(http.StatusOK, "image/png", receipt.QRCode)
	}

	return response.Success(c, http.StatusOK, receipt)
}

// CloseReceipt handles ending the transaction
func (h *CheckoutHandler) CloseReceipt(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.checkoutUC.CloseReceipt(c.Request().Context(), number); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
