package repositories

import (
	"errors"
	"fmt"

	"ecomarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// GetAll retrieves all reviews from the database.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", err)
	}
	return reviews, nil
}

// GetByID retrieves a review by its ID from the database.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by ID %s: %w", id, err)
	}
	return &review, nil
}

// GetByProduct retrieves a page of reviews for a product.
func (r *GORMReviewRepository) GetByProduct(productID string, params models.PaginationParams) ([]models.Review, int, error) {
	pageNumber, pageSize := params.Validated()
	query := r.db.Model(&models.Review{}).Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews for product %s: %w", productID, err)
	}

	var reviews []models.Review
	err := query.
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, int(total), nil
}

// GetAllByProduct retrieves every review for a product.
func (r *GORMReviewRepository) GetAllByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// GetByUser retrieves all reviews written by a user.
func (r *GORMReviewRepository) GetByUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for user %s: %w", userID, err)
	}
	return reviews, nil
}

// GetByUserAndProduct retrieves the review a user left for a product, if any.
func (r *GORMReviewRepository) GetByUserAndProduct(userID, productID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review by user %s for product %s: %w", userID, productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by user %s for product %s: %w", userID, productID, err)
	}
	return &review, nil
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update updates an existing review in the database.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	res := r.db.Save(review)
	if res.Error != nil {
		return fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", review.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a review by its ID from the database.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
