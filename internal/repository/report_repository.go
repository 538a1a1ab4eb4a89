package repository

import (
	"context"
	"time"
)

// 月別売上
type MonthlySales struct {
	Month      int     `json:"month"`
	TotalSales float64 `json:"total_sales"`
}

// カテゴリ別売上
type CategorySales struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"total_sales"`
}

// 売上上位の商品
type ProductSales struct {
	ProductID  string  `json:"id"`
	Name       string  `json:"name"`
	TotalSales float64 `json:"total_sales"`
}

// 在庫僅少の商品
type LowStockProduct struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
	Threshold int64  `json:"low_stock_threshold"`
}

// 集計クエリ（読み取り専用、不変条件なし）。
type ReportRepository interface {
	// Σ(price × stock)。商品ゼロ件なら 0。
	InventoryValue(ctx context.Context) (float64, error)

	// type=saleのΣtotalを対象年の月別に集計
	SalesPerMonth(ctx context.Context, year int) ([]MonthlySales, error)

	// type=saleのΣtotalをカテゴリ別に集計。from/toはcreated_atの範囲（両端含む、nil可）。
	SalesPerCategory(ctx context.Context, from, to *time.Time) ([]CategorySales, error)

	// stock <= threshold の商品
	LowStock(ctx context.Context, threshold int64) ([]LowStockProduct, error)

	// 売上合計の上位N商品（sale のみ、降順）
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}
