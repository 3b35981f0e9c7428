package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"ecomarket/internal/models"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews map[string]models.Review
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Review),
	}
}

// all returns every stored review ordered by ID for stable pagination.
func (r *MockReviewRepository) all() []models.Review {
	reviewList := make([]models.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		reviewList = append(reviewList, rev)
	}
	sort.Slice(reviewList, func(i, j int) bool { return reviewList[i].ID < reviewList[j].ID })
	return reviewList
}

// GetAll returns all reviews.
func (r *MockReviewRepository) GetAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.all(), nil
}

// GetByID returns a review by its ID.
func (r *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
	}
	return &review, nil
}

// GetByProduct returns a page of reviews for a product.
func (r *MockReviewRepository) GetByProduct(productID string, params models.PaginationParams) ([]models.Review, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Review
	for _, rev := range r.all() {
		if rev.ProductID == productID {
			matched = append(matched, rev)
		}
	}

	pageNumber, pageSize := params.Validated()
	total := len(matched)
	start := (pageNumber - 1) * pageSize
	if start >= total {
		return []models.Review{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// GetAllByProduct returns every review for a product.
func (r *MockReviewRepository) GetAllByProduct(productID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Review
	for _, rev := range r.all() {
		if rev.ProductID == productID {
			matched = append(matched, rev)
		}
	}
	return matched, nil
}

// GetByUser returns all reviews written by a user.
func (r *MockReviewRepository) GetByUser(userID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Review
	for _, rev := range r.all() {
		if rev.UserID == userID {
			matched = append(matched, rev)
		}
	}
	return matched, nil
}

// GetByUserAndProduct returns a user's review of a product, if any.
func (r *MockReviewRepository) GetByUserAndProduct(userID, productID string) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rev := range r.reviews {
		if rev.UserID == userID && rev.ProductID == productID {
			review := rev
			return &review, nil
		}
	}
	return nil, fmt.Errorf("review by user %s for product %s: %w", userID, productID, ErrNotFound)
}

// Create adds a new review.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews[review.ID] = *review
	return nil
}

// Update modifies an existing review.
func (r *MockReviewRepository) Update(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.reviews[review.ID]
	if !ok {
		return fmt.Errorf("review with ID %s: %w", review.ID, ErrNotFound)
	}
	review.UpdatedAt = time.Now()
	r.reviews[review.ID] = *review
	return nil
}

// Delete removes a review by its ID.
func (r *MockReviewRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.reviews[id]
	if !ok {
		return fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
	}
	delete(r.reviews, id)
	return nil
}
