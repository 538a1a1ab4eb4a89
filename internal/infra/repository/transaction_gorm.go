package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

// DI
func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

// 取引の作成。IDは呼び出し側採番なので重複はErrDuplicateIDで返す。
func (r *TransactionGormRepository) Create(ctx context.Context, t model.Transaction) error {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repo.ErrDuplicateID
		}
		return err
	}
	return nil
}

// 商品ごとの取引履歴（新しい順）
func (r *TransactionGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.Transaction, error) {
	var ts []model.Transaction
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&ts).Error
	if err != nil {
		return nil, err
	}
	return ts, nil
}
