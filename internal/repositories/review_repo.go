package repositories

import (
	"ecomarket/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll() ([]models.Review, error)
	GetByID(id string) (*models.Review, error)
	GetByProduct(productID string, params models.PaginationParams) ([]models.Review, int, error)
	// GetAllByProduct returns every review for a product, used when
	// recomputing the product's rating aggregate.
	GetAllByProduct(productID string) ([]models.Review, error)
	GetByUser(userID string) ([]models.Review, error)
	GetByUserAndProduct(userID, productID string) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id string) error
}
