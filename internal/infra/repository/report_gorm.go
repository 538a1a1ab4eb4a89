package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ReportGormRepository struct {
	db *gorm.DB
}

// DI
func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// Σ(price × stock)。商品ゼロ件でもエラーにせず 0 を返す。
func (r *ReportGormRepository) InventoryValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// 対象年の売上（type=sale）を月別に集計
func (r *ReportGormRepository) SalesPerMonth(ctx context.Context, year int) ([]repo.MonthlySales, error) {
	var rows []repo.MonthlySales
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("EXTRACT(MONTH FROM created_at)::int AS month, SUM(total) AS total_sales").
		Where("type = ? AND EXTRACT(YEAR FROM created_at) = ?", model.TransactionTypeSale, year).
		Group("EXTRACT(MONTH FROM created_at)").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// カテゴリ別売上（type=sale）。from/toはcreated_atの範囲（両端含む）。
func (r *ReportGormRepository) SalesPerCategory(ctx context.Context, from, to *time.Time) ([]repo.CategorySales, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("products.category AS category, SUM(transactions.total) AS total_sales").
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("transactions.type = ?", model.TransactionTypeSale)

	if from != nil {
		q = q.Where("transactions.created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("transactions.created_at <= ?", *to)
	}

	var rows []repo.CategorySales
	if err := q.Group("products.category").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// 在庫が閾値以下の商品。閾値もそのまま行に載せて返す。
func (r *ReportGormRepository) LowStock(ctx context.Context, threshold int64) ([]repo.LowStockProduct, error) {
	var rows []repo.LowStockProduct
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("id AS product_id, name, stock, ? AS threshold", threshold).
		Where("stock <= ?", threshold).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 売上合計の上位N商品（saleのみ、降順）
func (r *ReportGormRepository) TopProducts(ctx context.Context, limit int) ([]repo.ProductSales, error) {
	var rows []repo.ProductSales
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("products.id AS product_id, products.name AS name, SUM(transactions.total) AS total_sales").
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("transactions.type = ?", model.TransactionTypeSale).
		Group("products.id, products.name").
		Order("total_sales DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var _ repo.ReportRepository = (*ReportGormRepository)(nil)
