package model

// カートの明細。(cart_id, product_id) は一意で、
// 同じ商品を再追加すると数量は上書き（加算ではない）。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64 `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"`
	Quantity  int64 `gorm:"not null" json:"quantity"`
}
