package repository

import "context"

// トランザクション内で使う約束。
// チェックアウトが唯一の複文トランザクション利用者。
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがエラーを返したらrollback、nilならcommit。
// 接続はどの経路でも必ずプールへ返す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
