package repositories

import (
	"ecomarket/internal/models"
)

// ProductRepository defines the interface for product data access.
// Paginated listings return the page of products plus the total number of
// matching records.
type ProductRepository interface {
	GetAll(params models.PaginationParams) ([]models.Product, int, error)
	GetByID(id string) (*models.Product, error)
	Search(query string, params models.PaginationParams) ([]models.Product, int, error)
	GetByCategory(category string, params models.PaginationParams) ([]models.Product, int, error)
	GetEcoFriendly(params models.PaginationParams) ([]models.Product, int, error)
	GetBySeller(sellerID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error

	// AdjustStock applies a relative change to a product's stock quantity
	// in a single statement (negative delta reserves stock, positive
	// releases it). It reports whether a record was actually modified.
	AdjustStock(id string, delta int) (bool, error)

	// UpdateRating stores the recomputed review aggregate for a product.
	UpdateRating(id string, averageRating float64, reviewCount int) error
}
