package repository

import (
	"context"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// categoryID が nil なら全件（id昇順）
	List(ctx context.Context, categoryID *int64) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// 存在しない category_id は ErrInvalidReference
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
}
