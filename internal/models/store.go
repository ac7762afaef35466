package models

import "gorm.io/gorm"

// Store is a shop owned by exactly one user.
type Store struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description string `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Address     string `json:"address" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	UserID      string `json:"user_id" gorm:"type:varchar(36);index"`

	Products []Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
