package models

import "gorm.io/gorm"

// Product represents an item a store sells.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description string  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64 `json:"price" gorm:"type:decimal(15,10)" validate:"gte=0"`
	StoreID     string  `json:"store_id" gorm:"type:varchar(36);index"`

	Purchases []Purchase `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
