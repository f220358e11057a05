package repository

import "errors"

var (
	// 行が存在しない（または所有者が違って見えない）
	ErrNotFound = errors.New("not found")

	// 一意制約違反（email重複、チェックアウト済みカートなど）
	ErrConflict = errors.New("conflict")

	// 外部キー違反（存在しないcategory_idなど）
	ErrInvalidReference = errors.New("invalid reference")
)
