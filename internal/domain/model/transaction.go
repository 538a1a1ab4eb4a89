package model

import (
	"strings"
	"time"
)

// 在庫を増やすか減らすか
type TransactionType string

const (
	//仕入れ（在庫を増やす）
	TransactionTypePurchase TransactionType = "purchase"

	//販売（在庫を減らす）
	TransactionTypeSale TransactionType = "sale"
)

// NormalizeTransactionTypeは入力の表記ゆれを正規化する。
// 旧クライアントのインドネシア語表記（pengadaan/penjualan）も受け付ける。
func NormalizeTransactionType(raw string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "purchase", "pengadaan":
		return TransactionTypePurchase, true
	case "sale", "penjualan":
		return TransactionTypeSale, true
	default:
		return "", false
	}
}

// 取引履歴。一度書いたら更新・削除しない。
// 在庫の増減と同じアトミックな単位でだけ作成される。
type Transaction struct {
	ID        string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	ProductID string          `gorm:"type:varchar(64);not null;index" json:"product_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Type      TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`

	//任意（匿名販売はnull）
	CustomerID *string `gorm:"type:varchar(64)" json:"customer_id"`

	//取引時点の商品価格スナップショット
	ProductPrice float64 `gorm:"not null" json:"product_price"`

	//ProductPrice × Quantity
	Total float64 `gorm:"not null" json:"total"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
