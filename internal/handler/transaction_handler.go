package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /transactions（仕入れ・販売の記録）
type TransactionHandler struct {
	uc *usecase.StockUsecase
}

// DI
func NewTransactionHandler(uc *usecase.StockUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/transactions", h.create)
	e.POST("/products/:id/stock", h.adjustStock)
}

type TransactionCreateRequest struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId"`
	Quantity   int64   `json:"quantity"`
	Type       string  `json:"type"`
	CustomerID *string `json:"customerId"`
}

func (h *TransactionHandler) create(c echo.Context) error {
	var req TransactionCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//IDが無ければboundary側で採番する
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	out, err := h.uc.RecordTransaction(c.Request().Context(), usecase.RecordTransactionInput{
		TransactionID: req.ID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Type:          req.Type,
		CustomerID:    req.CustomerID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type StockAdjustRequest struct {
	Quantity  int64  `json:"quantity"`
	Direction string `json:"direction"`
}

func (h *TransactionHandler) adjustStock(c echo.Context) error {
	var req StockAdjustRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdjustStock(c.Request().Context(), usecase.AdjustStockInput{
		ProductID: c.Param("id"),
		Quantity:  req.Quantity,
		Direction: req.Direction,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
