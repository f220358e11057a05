package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"
)

// チェックアウト結果の観測（prometheusカウンタ等）
type CheckoutRecorder interface {
	RecordCheckout(outcome string)
}

// CheckoutUsecase はカートを不変の注文へ1回だけ変換する。
// 複文トランザクションを使うのはこのusecaseだけ。
type CheckoutUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	tx           repo.TransactionManager
	recorder     CheckoutRecorder
}

func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	tx repo.TransactionManager,
	recorder CheckoutRecorder,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		tx:           tx,
		recorder:     recorder,
	}
}

type CheckoutOutput struct {
	OrderID int64 `json:"orderId"`
}

// Checkout の流れ：
//  1. Tx外の読み取りで事前検証（所有チェック→空チェック）
//  2. BEGIN
//  3. ordersへINSERT。cart_idの一意制約違反＝チェックアウト済み→409
//  4. cart_items を order_items へ1文でコピー（スナップショット）
//  5. COMMIT
//
// 既存注文の事前チェックは意図的にしない。同時実行の決着は
// DBの一意制約だけに任せる（アプリ側ロックはプロセスを跨げない）。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, cartID int64) (CheckoutOutput, error) {
	out, err := u.checkout(ctx, userID, cartID)
	u.record(err)
	return out, err
}

func (u *CheckoutUsecase) checkout(ctx context.Context, userID int64, cartID int64) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	// 事前検証はロックを持たずに行う
	cart, err := u.cartRepo.FindByIDAndUser(ctx, cartID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CheckoutOutput{}, NewHTTPError(http.StatusNotFound, "cart not found")
		}
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 空カートは404と区別して400
	hasItems, err := u.cartItemRepo.HasItems(ctx, cart.ID)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !hasItems {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	var orderID int64

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, model.Order{
			CartID: cart.ID,
			UserID: userID,
		})
		if err != nil {
			// 一意制約違反＝他の呼び出しが先に注文を作った
			if errors.Is(err, repo.ErrConflict) {
				return NewHTTPError(http.StatusConflict, "cart already checked out")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CopyFromCart(ctx, id, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return CheckoutOutput{}, err
		}
		// BEGIN/COMMIT自体の失敗
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CheckoutOutput{OrderID: orderID}, nil
}

func (u *CheckoutUsecase) record(err error) {
	if u.recorder == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "internal"
		if he, ok := AsHTTPError(err); ok {
			switch he.Status {
			case http.StatusConflict:
				outcome = "conflict"
			case http.StatusNotFound:
				outcome = "not_found"
			case http.StatusBadRequest:
				outcome = "invalid"
			case http.StatusUnauthorized:
				outcome = "unauthorized"
			}
		}
	}
	u.recorder.RecordCheckout(outcome)
}
