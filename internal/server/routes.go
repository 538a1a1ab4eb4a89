package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	transactionH *handler.TransactionHandler,
	reportH *handler.ReportHandler,
) {
	productH.RegisterRoutes(e)
	transactionH.RegisterRoutes(e)
	reportH.RegisterRoutes(e)
}
