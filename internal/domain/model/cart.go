package model

import "time"

// チェックアウト1回につき1行。statusカラムは持たない：
// 「閉じたカート」は orders.cart_id が参照していることで決まる。
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
