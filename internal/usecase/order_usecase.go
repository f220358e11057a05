package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"
)

// OrderUsecase は確定済み注文の読み取り専用ビュー。
type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

type OrderSummary struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderItemOutput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type OrderDetail struct {
	ID        int64             `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// 自分の注文一覧（新しい順）
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderSummary, error) {
	if userID <= 0 {
		return []OrderSummary{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, OrderSummary{ID: o.ID, CreatedAt: o.CreatedAt})
	}
	return outs, nil
}

// 注文詳細（凍結された明細つき）。他人の注文は「存在しない扱い」。
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderDetail, error) {
	if userID <= 0 {
		return OrderDetail{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderDetail{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return OrderDetail{ID: o.ID, CreatedAt: o.CreatedAt, Items: outItems}, nil
}
