// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quickeats/internal/delivery"
	"quickeats/internal/delivery/api/middleware"
	"quickeats/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	ShopHandler     *handler.ShopHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         delivery.MetricsHandler `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	customerHandler *handler.CustomerHandler
	shopHandler     *handler.ShopHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         delivery.MetricsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		customerHandler: params.CustomerHandler,
		shopHandler:     params.ShopHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/request-otp", r.authHandler.RequestOTP)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.customerHandler.GetProfile)
		userGroup.PUT("/edit-profile", r.customerHandler.EditProfile)
		userGroup.PUT("/fcm-token", r.customerHandler.UpdatePushToken)
	}

	shopGroup := e.Group("/shop")
	{
		shopGroup.GET("", r.shopHandler.ListShops)
		shopGroup.GET("/", r.shopHandler.ListShops)
		shopGroup.GET("/search", r.shopHandler.SearchShops)
		shopGroup.GET("/recommended", r.shopHandler.ListRecommendedShops)
		shopGroup.GET("/special-offers", r.shopHandler.ListSpecialOffers)
		shopGroup.GET("/categories", r.shopHandler.ListCategories)
		shopGroup.POST("/delivery/calculate-fee", r.shopHandler.CalculateFee)

		// Aliases kept for existing clients
		shopGroup.GET("/all", r.shopHandler.ListShops)
		shopGroup.GET("/offers", r.shopHandler.ListSpecialOffers)
		shopGroup.GET("/category/all", r.shopHandler.ListCategories)

		shopGroup.GET("/:id", r.shopHandler.GetShop)
	}

	productGroup := e.Group("/product")
	{
		productGroup.GET("/all", r.productHandler.ListProducts)
		productGroup.GET("/search", r.productHandler.SearchProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/search", r.orderHandler.SearchOrders)
	}
}
