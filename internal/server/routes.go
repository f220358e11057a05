package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ArekKrak/m35-e-commerce/internal/config"
	"github.com/ArekKrak/m35-e-commerce/internal/handler"
	"github.com/ArekKrak/m35-e-commerce/internal/metrics"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server running.")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	h.Auth.RegisterRoutes(e)
	h.User.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
}
