package repositories

import (
	"errors"
	"fmt"

	"ecomarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetAll retrieves all favorites from the database.
func (r *GORMFavoriteRepository) GetAll() ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to get all favorites: %w", err)
	}
	return favorites, nil
}

// GetByID retrieves a favorite by its ID from the database.
func (r *GORMFavoriteRepository) GetByID(id string) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.First(&favorite, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get favorite by ID %s: %w", id, err)
	}
	return &favorite, nil
}

// GetByUser retrieves all favorites saved by a user.
func (r *GORMFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Find(&favorites, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorites for user %s: %w", userID, err)
	}
	return favorites, nil
}

// GetByUserAndProduct retrieves the favorite a user saved for a product, if any.
func (r *GORMFavoriteRepository) GetByUserAndProduct(userID, productID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.First(&favorite, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite by user %s for product %s: %w", userID, productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get favorite by user %s for product %s: %w", userID, productID, err)
	}
	return &favorite, nil
}

// Create creates a new favorite in the database.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	if err := r.db.Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete removes a favorite by its ID, reporting whether it existed.
func (r *GORMFavoriteRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Favorite{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete favorite %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteByUserAndProduct removes a user's favorite for a product, reporting
// whether it existed.
func (r *GORMFavoriteRepository) DeleteByUserAndProduct(userID, productID string) (bool, error) {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete favorite by user %s for product %s: %w", userID, productID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
