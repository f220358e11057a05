package model

import "time"

// cart_id の uniqueIndex が二重チェックアウト防止の本体。
// アプリ側のロックは使わない。
type Order struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;uniqueIndex" json:"cart_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
