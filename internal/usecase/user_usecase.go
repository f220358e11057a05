package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"
	auth "github.com/ArekKrak/m35-e-commerce/internal/usecase/auth_usecase"
)

// UserUsecase はプロフィールの読み取り・更新。
// 他人のプロフィールは読めない（ここはidが自分の名前空間なので403を返す）。
type UserUsecase struct {
	userRepo repo.UserRepository
	hasher   auth.PasswordHasher
}

func NewUserUsecase(userRepo repo.UserRepository, hasher auth.PasswordHasher) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, hasher: hasher}
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// email・passwordのどちらか一方だけでも更新できる
type UpdateUserInput struct {
	Email    *string
	Password *string
}

func (u *UserUsecase) ListUsers(ctx context.Context, callerID int64) ([]UserResponse, error) {
	if callerID <= 0 {
		return []UserResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]UserResponse, 0, len(users))
	for _, usr := range users {
		outs = append(outs, UserResponse{ID: usr.ID, Email: usr.Email})
	}
	return outs, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, callerID int64, userID int64) (UserResponse, error) {
	if callerID <= 0 {
		return UserResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if callerID != userID {
		return UserResponse{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	usr, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserResponse{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return UserResponse{ID: usr.ID, Email: usr.Email}, nil
}

func (u *UserUsecase) UpdateUser(ctx context.Context, callerID int64, userID int64, in UpdateUserInput) (UserResponse, error) {
	if callerID <= 0 {
		return UserResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if callerID != userID {
		return UserResponse{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if in.Email == nil && in.Password == nil {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "email or password is required")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "email must be a non-empty string")
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) == "" {
		return UserResponse{}, NewHTTPError(http.StatusBadRequest, "password must not be empty")
	}

	usr, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserResponse{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Email != nil {
		usr.Email = strings.TrimSpace(*in.Email)
	}
	if in.Password != nil {
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		usr.PasswordHash = hashed
	}

	if err := u.userRepo.Update(ctx, usr); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return UserResponse{}, NewHTTPError(http.StatusConflict, "email already in use")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return UserResponse{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return UserResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return UserResponse{ID: usr.ID, Email: usr.Email}, nil
}
