package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ArekKrak/m35-e-commerce/internal/metrics"
)

// New はミドルウェアを積んだechoエンジンを作る。
// ルート登録は routes.go 側。
func New(m *metrics.ServerMetrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	if m != nil {
		e.Use(m.Middleware())
	}

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
