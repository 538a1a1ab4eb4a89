package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 主キー重複（商品IDは呼び出し側採番のため起こり得る）
var ErrDuplicateID = errors.New("duplicate id")

// 一覧検索
type ProductListQuery struct {
	Page     int
	Limit    int
	Category string
	Q        string
}

// 部分更新。nilのフィールドは触らない。
type ProductPatch struct {
	Name     *string
	Price    *float64
	Stock    *int64
	Category *string
}

// Emptyはどのフィールドも指定されていないとき true。
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Stock == nil && p.Category == nil
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) error
	Patch(ctx context.Context, id string, patch ProductPatch) error
}
