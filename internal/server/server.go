package server

import (
	"context"
	"time"

	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Newはechoアプリを組み立てる。
// CORSは全オリジン許可（OPTIONSのpreflightもここで返る）。
func New(requestTimeout time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(appmw.RequestTimeout(requestTimeout))

	return e
}

// Startはサーバを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// Shutdownはgraceful shutdown。
func Shutdown(ctx context.Context, e *echo.Echo) error {
	return e.Shutdown(ctx)
}
