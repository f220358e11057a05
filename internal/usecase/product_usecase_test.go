package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"
	"github.com/ArekKrak/m35-e-commerce/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int64ptr(v int64) *int64 { return &v }

func newProductUsecase(productRepo *ProductRepoMock, categoryRepo *CategoryRepoMock) *usecase.ProductUsecase {
	return usecase.NewProductUsecase(productRepo, categoryRepo)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	uc := newProductUsecase(new(ProductRepoMock), new(CategoryRepoMock))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{Name: "", Price: int64ptr(100)})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.CreateProduct(context.Background(), usecase.ProductInput{Name: "Beans", Price: nil})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	uc := newProductUsecase(new(ProductRepoMock), new(CategoryRepoMock))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{Name: "Beans", Price: int64ptr(-1)})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

// 存在しないcategory_idは400（500にしない）
func TestCreateProduct_DanglingCategory_IsBadRequest(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := newProductUsecase(productRepo, new(CategoryRepoMock))

	productRepo.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, repo.ErrInvalidReference)

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:       "Beans",
		Price:      int64ptr(100),
		CategoryID: int64ptr(999),
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreateProduct_Success(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := newProductUsecase(productRepo, new(CategoryRepoMock))

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Beans" && p.Price == 100 && p.CategoryID == nil
	})).Return(model.Product{ID: 1, Name: "Beans", Price: 100}, nil)

	p, err := uc.CreateProduct(context.Background(), usecase.ProductInput{Name: " Beans ", Price: int64ptr(100)})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	productRepo.AssertExpectations(t)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := newProductUsecase(productRepo, new(CategoryRepoMock))

	productRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Product")).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.UpdateProduct(context.Background(), 999, usecase.ProductInput{Name: "X", Price: int64ptr(1)})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := newProductUsecase(productRepo, new(CategoryRepoMock))

	productRepo.On("Delete", mock.Anything, int64(999)).Return(repo.ErrNotFound)

	err := uc.DeleteProduct(context.Background(), 999)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestListProducts_CategoryFilterPassedThrough(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := newProductUsecase(productRepo, new(CategoryRepoMock))

	catID := int64(3)
	productRepo.On("List", mock.Anything, &catID).Return([]model.Product{{ID: 1}}, nil)

	out, err := uc.ListProducts(context.Background(), &catID)
	assert.NoError(t, err)
	assert.Len(t, out, 1)

	productRepo.AssertExpectations(t)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	uc := newProductUsecase(new(ProductRepoMock), new(CategoryRepoMock))

	_, err := uc.CreateCategory(context.Background(), "  ")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}
