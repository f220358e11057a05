package repository

import (
	"context"
	"errors"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文ヘッダを作成。orders.cart_id の一意制約違反は ErrConflict にして返す。
// 同時チェックアウトの敗者はここで判明する（事前チェックはしない）。
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrConflict
		}
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByIDAndUser(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// INSERT ... SELECT の1文でコピーする。
// コピーした瞬間のカート内容がそのまま注文になる（スナップショット）。
func (r *OrderItemGormRepository) CopyFromCart(ctx context.Context, orderID int64, cartID int64) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO order_items (order_id, product_id, quantity)
		 SELECT ?, product_id, quantity FROM cart_items WHERE cart_id = ?`,
		orderID, cartID,
	).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("product_id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}
