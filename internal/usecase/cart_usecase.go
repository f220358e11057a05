package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"
)

// CartUsecase は /carts の業務ロジック。
// チェックアウト自体は CheckoutUsecase が持つ。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CartResponse struct {
	ID     int64              `json:"id"`
	UserID int64              `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
}

// UpsertItemの入力
type UpsertItemInput struct {
	ProductID int64
	Quantity  int64
}

// DBに保存された行をそのまま返す（クライアント入力のエコーではない）
type UpsertItemOutput struct {
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CreateCart は空のカートを1つ作る。チェックアウト試行ごとに新しいカート。
func (u *CartUsecase) CreateCart(ctx context.Context, userID int64) (model.Cart, error) {
	if userID <= 0 {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.Create(ctx, userID)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cart, nil
}

// UpsertItem は明細を追加または数量上書きする。
func (u *CartUsecase) UpsertItem(ctx context.Context, userID int64, cartID int64, in UpsertItemInput) (UpsertItemOutput, error) {
	if userID <= 0 {
		return UpsertItemOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartID <= 0 {
		return UpsertItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if in.ProductID <= 0 {
		return UpsertItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Quantity <= 0 {
		return UpsertItemOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 所有チェック。他人のカートは404（403にしない：idの存在を漏らさない）
	if _, err := u.cartRepo.FindByIDAndUser(ctx, cartID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UpsertItemOutput{}, NewHTTPError(http.StatusNotFound, "cart not found")
		}
		return UpsertItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 商品の存在チェック
	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UpsertItemOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return UpsertItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartItemRepo.Upsert(ctx, cartID, in.ProductID, in.Quantity)
	if err != nil {
		return UpsertItemOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UpsertItemOutput{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}, nil
}

// GetCart はヘッダ＋明細（product_id昇順）を返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64, cartID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := u.cartRepo.FindByIDAndUser(ctx, cartID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, CartItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return CartResponse{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  respItems,
	}, nil
}
