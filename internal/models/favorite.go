package models

import "time"

// Favorite marks a product as saved by a user. The (UserID, ProductID) pair
// is unique.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
