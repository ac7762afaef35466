package models

import "gorm.io/gorm"

// User represents an account that can own stores and make purchases.
type User struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName string `json:"first_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	LastName  string `json:"last_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Email     string `json:"email" gorm:"type:varchar(255);index" validate:"required,email"`
	Password  string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	// APIToken is the live session credential. Nil means signed out.
	APIToken *string `json:"-" gorm:"uniqueIndex;type:varchar(64)"`

	Stores    []Store    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Purchases []Purchase `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
