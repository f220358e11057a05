package repository

import (
	"context"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
)

type CartItemRepository interface {
	// (cart_id, product_id) のアトミックなupsert。
	// 既存行があれば数量を上書きし、保存された行を返す。
	Upsert(ctx context.Context, cartID int64, productID int64, quantity int64) (model.CartItem, error)
	// product_id 昇順で返す（出力を決定的にする）
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// 明細が1件でもあるか（チェックアウト前チェック用）
	HasItems(ctx context.Context, cartID int64) (bool, error)
}
