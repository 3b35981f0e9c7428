package models

import "time"

// Review represents a product review left by a user. A user may review a
// given product at most once.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"required,min=1,max=500"`
	Images    []string  `json:"images" gorm:"serializer:json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
