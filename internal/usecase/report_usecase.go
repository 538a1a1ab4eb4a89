package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 集計レポート（読み取り専用）。
type ReportUsecase struct {
	reports      repo.ReportRepository
	transactions repo.TransactionRepository
	products     repo.ProductRepository
}

// DI
func NewReportUsecase(
	reports repo.ReportRepository,
	transactions repo.TransactionRepository,
	products repo.ProductRepository,
) *ReportUsecase {
	return &ReportUsecase{
		reports:      reports,
		transactions: transactions,
		products:     products,
	}
}

type InventoryValueOutput struct {
	TotalValue float64 `json:"totalValue"`
}

func (u *ReportUsecase) InventoryValue(ctx context.Context) (InventoryValueOutput, error) {
	total, err := u.reports.InventoryValue(ctx)
	if err != nil {
		return InventoryValueOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return InventoryValueOutput{TotalValue: total}, nil
}

func (u *ReportUsecase) ProductHistory(ctx context.Context, productID string) ([]model.Transaction, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ts, err := u.transactions.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ts, nil
}

type SalesPerMonthOutput struct {
	Year int                 `json:"year"`
	Rows []repo.MonthlySales `json:"rows"`
}

func (u *ReportUsecase) SalesPerMonth(ctx context.Context, year int) (SalesPerMonthOutput, error) {
	if year < 0 {
		return SalesPerMonthOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "year must be >= 0")
	}
	rows, err := u.reports.SalesPerMonth(ctx, year)
	if err != nil {
		return SalesPerMonthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rows == nil {
		rows = []repo.MonthlySales{}
	}
	return SalesPerMonthOutput{Year: year, Rows: rows}, nil
}

type SalesPerCategoryOutput struct {
	Rows []repo.CategorySales `json:"rows"`
}

func (u *ReportUsecase) SalesPerCategory(ctx context.Context, from, to *time.Time) (SalesPerCategoryOutput, error) {
	rows, err := u.reports.SalesPerCategory(ctx, from, to)
	if err != nil {
		return SalesPerCategoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rows == nil {
		rows = []repo.CategorySales{}
	}
	return SalesPerCategoryOutput{Rows: rows}, nil
}

type LowStockOutput struct {
	Items []repo.LowStockProduct `json:"items"`
}

// 既定値はboundary側で入れる。threshold=0は在庫切れのみを拾う正当な指定。
func (u *ReportUsecase) LowStock(ctx context.Context, threshold int64) (LowStockOutput, error) {
	if threshold < 0 {
		return LowStockOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "threshold must be >= 0")
	}
	items, err := u.reports.LowStock(ctx, threshold)
	if err != nil {
		return LowStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if items == nil {
		items = []repo.LowStockProduct{}
	}
	return LowStockOutput{Items: items}, nil
}

type TopProductsOutput struct {
	Rows []repo.ProductSales `json:"rows"`
}

func (u *ReportUsecase) TopProducts(ctx context.Context, limit int) (TopProductsOutput, error) {
	if limit < 0 {
		return TopProductsOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "limit must be >= 0")
	}
	rows, err := u.reports.TopProducts(ctx, limit)
	if err != nil {
		return TopProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rows == nil {
		rows = []repo.ProductSales{}
	}
	return TopProductsOutput{Rows: rows}, nil
}
