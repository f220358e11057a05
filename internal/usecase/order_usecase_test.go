package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"
	"github.com/ArekKrak/m35-e-commerce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListMyOrders_Success(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(orderRepo, new(OrderItemRepoMock))

	now := time.Now()
	orderRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Order{
		{ID: 2, CartID: 9, UserID: 1, CreatedAt: now},
		{ID: 1, CartID: 5, UserID: 1, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	out, err := uc.ListMyOrders(context.Background(), 1)
	assert.NoError(t, err)
	// 一覧はヘッダだけ（id + created_at）
	assert.Equal(t, []usecase.OrderSummary{
		{ID: 2, CreatedAt: now},
		{ID: 1, CreatedAt: now.Add(-time.Hour)},
	}, out)
}

func TestGetMyOrderDetail_NotOwned_IsNotFound(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewOrderUsecase(orderRepo, new(OrderItemRepoMock))

	orderRepo.On("FindByIDAndUser", mock.Anything, int64(7), int64(2)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetMyOrderDetail(context.Background(), 2, 7)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestGetMyOrderDetail_InvalidID(t *testing.T) {
	uc := usecase.NewOrderUsecase(new(OrderRepoMock), new(OrderItemRepoMock))

	_, err := uc.GetMyOrderDetail(context.Background(), 1, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestGetMyOrderDetail_Success(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(orderRepo, orderItemRepo)

	now := time.Now()
	orderRepo.On("FindByIDAndUser", mock.Anything, int64(42), int64(1)).
		Return(model.Order{ID: 42, CartID: 5, UserID: 1, CreatedAt: now}, nil)
	orderItemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{
		{ID: 1, OrderID: 42, ProductID: 7, Quantity: 2},
	}, nil)

	out, err := uc.GetMyOrderDetail(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, []usecase.OrderItemOutput{{ProductID: 7, Quantity: 2}}, out.Items)
}
