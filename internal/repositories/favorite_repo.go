package repositories

import (
	"ecomarket/internal/models"
)

// FavoriteRepository defines the interface for favorite data access.
type FavoriteRepository interface {
	GetAll() ([]models.Favorite, error)
	GetByID(id string) (*models.Favorite, error)
	GetByUser(userID string) ([]models.Favorite, error)
	GetByUserAndProduct(userID, productID string) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	Delete(id string) (bool, error)
	DeleteByUserAndProduct(userID, productID string) (bool, error)
}
