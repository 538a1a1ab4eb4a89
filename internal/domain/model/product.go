package model

import "time"

// 商品。在庫（Stock）は全ての更新経路で 0 以上を維持する。
type Product struct {
	//IDは呼び出し側が採番する（未指定ならboundaryでUUID）
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int64     `gorm:"not null" json:"stock"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
