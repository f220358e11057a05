package repository

import (
	"context"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
)

type OrderItemRepository interface {
	// cart_items を order_items へ1文でコピーする（スナップショット）。
	// アプリ側で行を往復させない。
	CopyFromCart(ctx context.Context, orderID int64, cartID int64) error
	// product_id 昇順
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
