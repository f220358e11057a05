package model

// 価格は最小通貨単位の整数（マイナス禁止）。
type Product struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Price      int64  `gorm:"not null" json:"price"`
	CategoryID *int64 `gorm:"index" json:"category_id"`

	// 参照整合はDBの外部キーに任せる
	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
