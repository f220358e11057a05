package repository

import (
	"context"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
)

type OrderRepository interface {
	// 注文ヘッダを作成して採番されたidを返す。
	// orders.cart_id の一意制約違反は ErrConflict（=チェックアウト済み）。
	Create(ctx context.Context, order model.Order) (int64, error)
	// 所有チェック込みの取得。他人の注文は ErrNotFound。
	FindByIDAndUser(ctx context.Context, orderID int64, userID int64) (model.Order, error)
	// 新しい順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
