package repository

import (
	"context"
	"errors"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートヘッダを1行作る（チェックアウト試行ごとに新しいカート）
func (r *CartGormRepository) Create(ctx context.Context, userID int64) (model.Cart, error) {
	cart := model.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// id と user_id を1クエリで両方確認する。
// 他人のカートは「存在しない」と同じ扱い（idの存在を漏らさない）。
func (r *CartGormRepository) FindByIDAndUser(ctx context.Context, cartID int64, userID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartID, userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity
// 数量は上書き（加算ではない）。1文でアトミック。
// 返すのはDBに保存された行（クライアント入力のエコーではない）。
func (r *CartItemGormRepository) Upsert(ctx context.Context, cartID int64, productID int64, quantity int64) (model.CartItem, error) {
	item := model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"quantity": quantity}),
		}).
		Create(&item).Error
	if err != nil {
		return model.CartItem{}, err
	}

	// 競合更新だと item.ID が採番されないので保存行を読み直す
	var stored model.CartItem
	err = r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&stored).Error
	if err != nil {
		return model.CartItem{}, err
	}
	return stored, nil
}

// product_id 昇順で返す（出力を決定的にする）
func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("product_id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// 明細が1件でもあるか（LIMIT 1相当）
func (r *CartItemGormRepository) HasItems(ctx context.Context, cartID int64) (bool, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Select("id").
		Where("cart_id = ?", cartID).
		Limit(1).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
