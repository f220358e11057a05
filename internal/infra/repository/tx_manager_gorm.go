package repository

import (
	"context"

	repo "github.com/ArekKrak/m35-e-commerce/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository { return r.orderItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// WithinTx は専用のトランザクション接続でfnを実行する。
// BEGINが成功した後だけROLLBACKを呼ぶ（開いていないTxへのrollbackはバグ扱い）。
// Commit/Rollbackのどちらでも接続は必ずプールへ返る。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	started := true

	defer func() {
		if p := recover(); p != nil {
			if started {
				tx.Rollback()
			}
			panic(p)
		}
	}()

	// repoはtxを持ったDBで作り直す
	r := &txReposGorm{
		orders:     NewOrderGormRepository(tx),
		orderItems: NewOrderItemGormRepository(tx),
	}

	if err := fn(r); err != nil {
		tx.Rollback()
		started = false
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	started = false
	return nil
}
