package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/audit"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 在庫の増減方向
type StockDirection string

const (
	StockDirectionIncrease StockDirection = "increase"
	StockDirectionDecrease StockDirection = "decrease"
)

// 旧クライアントの表記（tambah/kurang）も受け付ける
func normalizeDirection(raw string) (StockDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "increase", "tambah":
		return StockDirectionIncrease, true
	case "decrease", "kurang":
		return StockDirectionDecrease, true
	default:
		return "", false
	}
}

// 在庫更新エンジン。
// 在庫が負にならないこと、取引行と在庫増減が同じアトミックな単位で
// コミットされることをここで保証する。
type StockUsecase struct {
	tx       repo.TransactionManager
	products repo.ProductRepository
	stock    repo.StockRepository
	trail    *audit.Trail
}

// DI
func NewStockUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	stock repo.StockRepository,
	trail *audit.Trail,
) *StockUsecase {
	return &StockUsecase{
		tx:       tx,
		products: products,
		stock:    stock,
		trail:    trail,
	}
}

type AdjustStockInput struct {
	ProductID string
	Quantity  int64
	Direction string
}

type AdjustStockOutput struct {
	ProductID string `json:"product_id"`
	NewStock  int64  `json:"new_stock"`
}

// AdjustStockは在庫を増減して新しい在庫数を返す。
// 減算は「足りるときだけ」の条件付きUPDATEなので、競合しても負にはならない。
func (u *StockUsecase) AdjustStock(ctx context.Context, in AdjustStockInput) (AdjustStockOutput, error) {
	//ストアに触る前に入力を検証する
	if strings.TrimSpace(in.ProductID) == "" {
		return AdjustStockOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "product id required")
	}
	if in.Quantity <= 0 {
		return AdjustStockOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "quantity must be > 0")
	}
	dir, ok := normalizeDirection(in.Direction)
	if !ok {
		return AdjustStockOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "invalid direction")
	}

	//存在確認（404の区別のため）
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return AdjustStockOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return AdjustStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	switch dir {
	case StockDirectionIncrease:
		if err := u.stock.IncreaseStock(ctx, in.ProductID, in.Quantity); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return AdjustStockOutput{}, NewHTTPError(http.StatusNotFound, "not found")
			}
			return AdjustStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	case StockDirectionDecrease:
		ok, err := u.stock.DecreaseStockIfEnough(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return AdjustStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return AdjustStockOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "insufficient stock")
		}
	}

	//更新後の在庫数を読む
	p, err := u.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return AdjustStockOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.trail.Append(fmt.Sprintf("UPDATE stock %s quantity:%d => %d direction:%s", in.ProductID, in.Quantity, p.Stock, dir))

	return AdjustStockOutput{ProductID: in.ProductID, NewStock: p.Stock}, nil
}

type RecordTransactionInput struct {
	TransactionID string
	ProductID     string
	Quantity      int64
	Type          string
	CustomerID    *string
}

type RecordTransactionOutput struct {
	TransactionID string  `json:"txId"`
	ProductID     string  `json:"productId"`
	Quantity      int64   `json:"quantity"`
	Type          string  `json:"type"`
	Total         float64 `json:"total"`
}

// RecordTransactionは仕入れ/販売を1つのアトミックな単位で適用する:
// 行ロック付きで商品を読み（価格スナップショット＋在庫の直列化）、
// 在庫を増減し、取引行を挿入してコミットする。
// 途中で失敗したら全てロールバックし、部分的な効果は残さない。
// 同じ商品への同時呼び出しは行ロックで直列化され、別商品同士はブロックしない。
func (u *StockUsecase) RecordTransaction(ctx context.Context, in RecordTransactionInput) (RecordTransactionOutput, error) {
	//ストアに触る前に入力を検証する
	if strings.TrimSpace(in.TransactionID) == "" || strings.TrimSpace(in.ProductID) == "" {
		return RecordTransactionOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "transaction id and product id required")
	}
	if in.Quantity <= 0 {
		return RecordTransactionOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "quantity must be > 0")
	}
	txType, ok := model.NormalizeTransactionType(in.Type)
	if !ok {
		return RecordTransactionOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "invalid transaction type")
	}

	var out RecordTransactionOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//ロック読み。コミット/ロールバックまで同じ商品の他の取引はここで待つ。
		p, err := r.Stock().FindForUpdate(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		switch txType {
		case model.TransactionTypePurchase:
			//仕入れは在庫チェック不要
			if err := r.Stock().IncreaseStock(ctx, in.ProductID, in.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		case model.TransactionTypeSale:
			//ロック済みの在庫で判定してから減算する
			if p.Stock < in.Quantity {
				return NewHTTPError(http.StatusUnprocessableEntity, "insufficient stock")
			}
			ok, err := r.Stock().DecreaseStockIfEnough(ctx, in.ProductID, in.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusUnprocessableEntity, "insufficient stock")
			}
		}

		total := p.Price * float64(in.Quantity)

		//取引行は在庫増減と同じトランザクションで書く（1:1対応の保証）
		if err := r.Transactions().Create(ctx, model.Transaction{
			ID:           in.TransactionID,
			ProductID:    in.ProductID,
			Quantity:     in.Quantity,
			Type:         txType,
			CustomerID:   in.CustomerID,
			ProductPrice: p.Price,
			Total:        total,
		}); err != nil {
			if errors.Is(err, repo.ErrDuplicateID) {
				return NewHTTPError(http.StatusUnprocessableEntity, "transaction id already exists")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = RecordTransactionOutput{
			TransactionID: in.TransactionID,
			ProductID:     in.ProductID,
			Quantity:      in.Quantity,
			Type:          string(txType),
			Total:         total,
		}
		return nil
	})

	if err != nil {
		return RecordTransactionOutput{}, err
	}

	//コミット後に追記。失敗しても結果には影響しない。
	u.trail.Append(fmt.Sprintf("TX %s %s %s %d total:%g", out.TransactionID, out.Type, out.ProductID, out.Quantity, out.Total))

	return out, nil
}
