package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// TableHandlerParams holds dependencies for TableHandler, injected by Fx.
type TableHandlerParams struct {
	fx.In

	TableUC usecase.TableUsecase
	Logger  *slog.Logger
}

// TableHandler holds dependencies for table and cart handlers
type TableHandler struct {
	tableUC usecase.TableUsecase
	logger  *slog.Logger
}

// NewTableHandler is the constructor for TableHandler
func NewTableHandler(params TableHandlerParams) *TableHandler {
	return &TableHandler{
		tableUC: params.TableUC,
		logger:  params.Logger,
	}
}

// OpenTableRequest represents the request body for opening a table
type OpenTableRequest struct {
	Number int `json:"number" validate:"required,min=1"`
}

// AddItemRequest represents the request body for adding a product to a cart
type AddItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// TableResponse is a table with its computed cart totals
type TableResponse struct {
	*entity.Table
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

func newTableResponse(table *entity.Table) TableResponse {
	return TableResponse{
		Table:     table,
		Total:     table.Cart.Total(),
		ItemCount: table.Cart.ItemCount(),
	}
}

// OpenTable handles opening a table
func (h *TableHandler) OpenTable(c echo.Context) error {
	var req OpenTableRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid table input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	table, err := h.tableUC.OpenTable(c.Request().Context(), req.Number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTableResponse(table))
}

// ListTables handles listing the open tables
func (h *TableHandler) ListTables(c echo.Context) error {
	tables, err := h.tableUC.ListOpenTables(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]TableResponse, 0, len(tables))
	for _, table := range tables {
		resp = append(resp, newTableResponse(table))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetTable handles retrieving one open table
func (h *TableHandler) GetTable(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.GetTable(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTableResponse(table))
}

// AddItem handles adding one unit of a product to a table's cart
func (h *TableHandler) AddItem(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	table, err := h.tableUC.AddItem(c.Request().Context(), number, entity.Product{
		ID:        req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTableResponse(table))
}

// RemoveItem handles removing one unit of a product from a table's cart
func (h *TableHandler) RemoveItem(c echo.Context) error {
	number, err := tableNumberParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	table, err := h.tableUC.RemoveItem(c.Request().Context(), number, c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTableResponse(table))
}
