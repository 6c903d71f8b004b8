package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer directory handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateCustomerRequest represents the request body for registering a customer
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// SearchCustomers handles the customer search; q is matched against name and phone
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	customers, err := h.customerUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// GetCustomer handles retrieving one customer
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customer, err := h.customerUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// CreateCustomer handles registering a customer
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customer, err := h.customerUC.Create(c.Request().Context(), &usecase.CreateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// GetLoyaltyConfig handles retrieving the loyalty program parameters
func (h *CustomerHandler) GetLoyaltyConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.customerUC.LoyaltyConfig(c.Request().Context()))
}
