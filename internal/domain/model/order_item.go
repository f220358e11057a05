package model

// チェックアウト時点の cart_items のコピー。
// cart_items への外部キーは張らない（後からカートを触っても注文は不変）。
type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;index" json:"order_id"`
	ProductID int64 `gorm:"not null" json:"product_id"`
	Quantity  int64 `gorm:"not null" json:"quantity"`
}
