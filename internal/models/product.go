package models

import "time"

// Product represents a product listed on the marketplace.
type Product struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name              string    `json:"name" validate:"required,min=3,max=100"`
	Description       string    `json:"description" validate:"required,max=500"`
	Category          string    `json:"category" gorm:"index;type:varchar(100)" validate:"required,max=100"`
	Price             float64   `json:"price" validate:"required,gt=0"`
	SellerID          string    `json:"seller_id" gorm:"index;type:varchar(36)" validate:"required"`
	ImageURL          string    `json:"image_url,omitempty" validate:"omitempty,url"`
	StockQuantity     int       `json:"stock_quantity" validate:"gte=0"`
	IsEcoFriendly     bool      `json:"is_eco_friendly"`
	EcoFeatures       []string  `json:"eco_features" gorm:"serializer:json"`
	EcoCertifications []string  `json:"eco_certifications" gorm:"serializer:json"`
	AverageRating     float64   `json:"average_rating"`
	ReviewCount       int       `json:"review_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
