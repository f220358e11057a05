package repository

import (
	"context"

	"github.com/ArekKrak/m35-e-commerce/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。email重複は ErrConflict。
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// メールからユーザーを1件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// 一覧（id昇順）
	List(ctx context.Context) ([]model.User, error)
	// email・password_hash の更新。email重複は ErrConflict。
	Update(ctx context.Context, user *model.User) error
}
