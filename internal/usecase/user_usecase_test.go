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

type hasherStub struct{}

func (hasherStub) Hash(password string) (string, error) { return "hashed:" + password, nil }

func strptr(s string) *string { return &s }

func TestGetUser_OtherUser_IsForbidden(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo, hasherStub{})

	_, err := uc.GetUser(context.Background(), 1, 2)
	assertHTTPStatus(t, err, http.StatusForbidden)

	// 認可で落ちたらDBへ行かない
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetUser_Success(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo, hasherStub{})

	userRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "a@example.com"}, nil)

	out, err := uc.GetUser(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, usecase.UserResponse{ID: 1, Email: "a@example.com"}, out)
}

func TestUpdateUser_OtherUser_IsForbidden(t *testing.T) {
	uc := usecase.NewUserUsecase(new(UserRepoMock), hasherStub{})

	_, err := uc.UpdateUser(context.Background(), 1, 2, usecase.UpdateUserInput{Email: strptr("b@example.com")})
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestUpdateUser_NoFields(t *testing.T) {
	uc := usecase.NewUserUsecase(new(UserRepoMock), hasherStub{})

	_, err := uc.UpdateUser(context.Background(), 1, 1, usecase.UpdateUserInput{})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestUpdateUser_EmailOnly(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo, hasherStub{})

	userRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "a@example.com", PasswordHash: "keep"}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// パスワードは触らない
		return u.Email == "b@example.com" && u.PasswordHash == "keep"
	})).Return(nil)

	out, err := uc.UpdateUser(context.Background(), 1, 1, usecase.UpdateUserInput{Email: strptr("b@example.com")})
	assert.NoError(t, err)
	assert.Equal(t, "b@example.com", out.Email)

	userRepo.AssertExpectations(t)
}

func TestUpdateUser_PasswordIsHashed(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo, hasherStub{})

	userRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "a@example.com"}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.PasswordHash == "hashed:newpass"
	})).Return(nil)

	_, err := uc.UpdateUser(context.Background(), 1, 1, usecase.UpdateUserInput{Password: strptr("newpass")})
	assert.NoError(t, err)

	userRepo.AssertExpectations(t)
}

func TestUpdateUser_DuplicateEmail_IsConflict(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo, hasherStub{})

	userRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "a@example.com"}, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	_, err := uc.UpdateUser(context.Background(), 1, 1, usecase.UpdateUserInput{Email: strptr("taken@example.com")})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestListUsers_Success(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := usecase.NewUserUsecase(userRepo, hasherStub{})

	userRepo.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Email: "a@example.com", PasswordHash: "secret"},
		{ID: 2, Email: "b@example.com", PasswordHash: "secret"},
	}, nil)

	out, err := uc.ListUsers(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []usecase.UserResponse{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}, out)
}
