package repository

import (
	"context"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
)

type CartRepository interface {
	// 新しいカートヘッダを1行作る
	Create(ctx context.Context, userID int64) (model.Cart, error)
	// 所有チェック込みの取得。他人のカートは ErrNotFound。
	FindByIDAndUser(ctx context.Context, cartID int64, userID int64) (model.Cart, error)
}
