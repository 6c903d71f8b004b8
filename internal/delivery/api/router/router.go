// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pos/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TableHandler    *handler.TableHandler
	CustomerHandler *handler.CustomerHandler
	CheckoutHandler *handler.CheckoutHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	tableHandler    *handler.TableHandler
	customerHandler *handler.CustomerHandler
	checkoutHandler *handler.CheckoutHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tableHandler:    params.TableHandler,
		customerHandler: params.CustomerHandler,
		checkoutHandler: params.CheckoutHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Table and cart routes
	tablesGroup := e.Group("/tables")
	{
		tablesGroup.GET("", r.tableHandler.ListTables)
		tablesGroup.POST("", r.tableHandler.OpenTable)
		tablesGroup.GET("/:number", r.tableHandler.GetTable)
		tablesGroup.POST("/:number/items", r.tableHandler.AddItem)
		tablesGroup.DELETE("/:number/items/:productId", r.tableHandler.RemoveItem)
	}

	// Checkout routes, one checkout per table
	checkoutGroup := tablesGroup.Group("/:number/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Pay)
		checkoutGroup.GET("", r.checkoutHandler.GetCheckout)
		checkoutGroup.DELETE("", r.checkoutHandler.CancelCheckout)
		checkoutGroup.PUT("/customer", r.checkoutHandler.SelectCustomer)
		checkoutGroup.DELETE("/customer", r.checkoutHandler.ClearCustomer)
		checkoutGroup.POST("/quote", r.checkoutHandler.Quote)
		checkoutGroup.POST("/confirm", r.checkoutHandler.Confirm)
		checkoutGroup.POST("/skip", r.checkoutHandler.Skip)
		checkoutGroup.POST("/payment", r.checkoutHandler.ChoosePayment)
		checkoutGroup.GET("/receipt", r.checkoutHandler.GetReceipt)
		checkoutGroup.POST("/receipt/close", r.checkoutHandler.CloseReceipt)
	}

	// In-flight checkouts across tables
	e.GET("/checkouts", r.checkoutHandler.ListCheckouts)

	// Customer directory routes
	customersGroup := e.Group("/customers")
	{
		customersGroup.GET("", r.customerHandler.SearchCustomers)
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.GET("/loyalty-config", r.customerHandler.GetLoyaltyConfig)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
	}
}
