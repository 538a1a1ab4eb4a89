package repository

import (
	"app/internal/domain/model"
	"context"
)

// 在庫の読み書き。Stock Mutation Engineからだけ使う。
type StockRepository interface {
	// 行ロック付きで商品を読む（SELECT ... FOR UPDATE）。
	// トランザクション内で呼ぶこと。コミット/ロールバックまでロックが保持され、
	// 同じ商品への同時更新がここで直列化される。
	FindForUpdate(ctx context.Context, productID string) (model.Product, error)

	// 在庫を増やす
	IncreaseStock(ctx context.Context, productID string, qty int64) error

	// 在庫が足りるときだけ減算（足りなければ false）
	DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error)

	// 在庫の現在値を設定
	SetStock(ctx context.Context, productID string, newStock int64) error
}
