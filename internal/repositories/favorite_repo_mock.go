package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"ecomarket/internal/models"

	"github.com/google/uuid"
)

// MockFavoriteRepository is an in-memory implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	favorites map[string]models.Favorite
	mu        sync.RWMutex
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository.
func NewMockFavoriteRepository() *MockFavoriteRepository {
	return &MockFavoriteRepository{
		favorites: make(map[string]models.Favorite),
	}
}

// GetAll returns all favorites.
func (r *MockFavoriteRepository) GetAll() ([]models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favoriteList := make([]models.Favorite, 0, len(r.favorites))
	for _, f := range r.favorites {
		favoriteList = append(favoriteList, f)
	}
	sort.Slice(favoriteList, func(i, j int) bool { return favoriteList[i].ID < favoriteList[j].ID })
	return favoriteList, nil
}

// GetByID returns a favorite by its ID.
func (r *MockFavoriteRepository) GetByID(id string) (*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favorite, ok := r.favorites[id]
	if !ok {
		return nil, fmt.Errorf("favorite with ID %s: %w", id, ErrNotFound)
	}
	return &favorite, nil
}

// GetByUser returns all favorites belonging to a user.
func (r *MockFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			matched = append(matched, f)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// GetByUserAndProduct returns a user's favorite of a product, if any.
func (r *MockFavoriteRepository) GetByUserAndProduct(userID, productID string) (*models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.favorites {
		if f.UserID == userID && f.ProductID == productID {
			favorite := f
			return &favorite, nil
		}
	}
	return nil, fmt.Errorf("favorite by user %s for product %s: %w", userID, productID, ErrNotFound)
}

// Create adds a new favorite.
func (r *MockFavoriteRepository) Create(favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	favorite.CreatedAt = time.Now()
	r.favorites[favorite.ID] = *favorite
	return nil
}

// Delete removes a favorite by its ID, reporting whether it existed.
func (r *MockFavoriteRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.favorites[id]
	if !ok {
		return false, nil
	}
	delete(r.favorites, id)
	return true, nil
}

// DeleteByUserAndProduct removes a user's favorite of a product, reporting
// whether it existed.
func (r *MockFavoriteRepository) DeleteByUserAndProduct(userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, f := range r.favorites {
		if f.UserID == userID && f.ProductID == productID {
			delete(r.favorites, id)
			return true, nil
		}
	}
	return false, nil
}
