package repository

import (
	"app/internal/domain/model"
	"context"
)

// 取引履歴の永続化。作成と参照のみ（更新・削除はしない）。
type TransactionRepository interface {
	Create(ctx context.Context, t model.Transaction) error

	// 商品ごとの履歴（新しい順）
	ListByProductID(ctx context.Context, productID string) ([]model.Transaction, error)
}
