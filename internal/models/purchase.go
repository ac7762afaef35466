package models

import "time"

// PurchaseItem is a single line item within a checkout submission.
type PurchaseItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// Purchase is one persisted line item. All rows written by the same
// checkout call share one group number; group numbers form a per-user
// sequence starting at 1.
type Purchase struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);index"`
	Quantity  int       `json:"quantity"`
	Group     int       `json:"group" gorm:"column:group"`
	CreatedAt time.Time `json:"created_at"`
}
