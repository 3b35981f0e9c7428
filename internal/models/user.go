package models

import "time"

// User represents an account on the marketplace.
type User struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email       string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // Stored as a bcrypt hash
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Role        string     `json:"role" gorm:"type:varchar(20);default:user"` // "user", "seller" or "admin"
	Phone       string     `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address     string     `json:"address,omitempty" validate:"omitempty,max=255"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
