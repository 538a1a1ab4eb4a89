package handler

import (
	"net/http"
	"strconv"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /reports の集計API（読み取り専用）
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/inventory", h.inventoryValue)
	e.GET("/reports/sales-per-month", h.salesPerMonth)
	e.GET("/reports/sales-per-category", h.salesPerCategory)
	e.GET("/reports/top-products", h.topProducts)
	e.GET("/reports/low-stock", h.lowStock)
	e.GET("/products/:id/history", h.productHistory)
}

func (h *ReportHandler) inventoryValue(c echo.Context) error {
	out, err := h.uc.InventoryValue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) salesPerMonth(c echo.Context) error {
	//未指定のときだけ今年に倒す
	year := time.Now().Year()
	if v := c.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		}
		year = y
	}

	out, err := h.uc.SalesPerMonth(c.Request().Context(), year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// from/toはYYYY-MM-DDかRFC3339を受け付ける（両端含む）
func parseReportTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *ReportHandler) salesPerCategory(c echo.Context) error {
	from, err := parseReportTime(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
	}
	to, err := parseReportTime(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
	}

	out, err := h.uc.SalesPerCategory(c.Request().Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) topProducts(c echo.Context) error {
	//既定は10件。limit=0の明示指定はそのまま通す（0件返し）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.TopProducts(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) lowStock(c echo.Context) error {
	//既定は10。threshold=0は「在庫切れのみ」の意味なので書き換えない
	threshold := int64(10)
	if v := c.QueryParam("threshold"); v != "" {
		t, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid threshold"})
		}
		threshold = t
	}

	out, err := h.uc.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) productHistory(c echo.Context) error {
	ts, err := h.uc.ProductHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}
