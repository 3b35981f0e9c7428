package services

import (
	"errors"
	"strings"
	"time"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
)

// FavoriteService handles business logic related to favorites.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// GetAllFavorites retrieves all favorites.
func (s *FavoriteService) GetAllFavorites() ([]models.Favorite, error) {
	favorites, err := s.favoriteRepo.GetAll()
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve favorites: %v", err)
	}
	return favorites, nil
}

// GetFavoriteByID retrieves a single favorite by its ID.
func (s *FavoriteService) GetFavoriteByID(id string) (*models.Favorite, error) {
	favorite, err := s.favoriteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "favorite not found")
		}
		return nil, newError(DependencyFailure, "failed to retrieve favorite %s: %v", id, err)
	}
	return favorite, nil
}

// GetUserFavorites retrieves all favorites saved by a user.
func (s *FavoriteService) GetUserFavorites(userID string) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepo.GetByUser(userID)
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve favorites for user %s: %v", userID, err)
	}
	return favorites, nil
}

// CreateFavorite saves a product to a user's favorites. The user and product
// must exist and the pair must not already be saved.
func (s *FavoriteService) CreateFavorite(favorite *models.Favorite) (*models.Favorite, error) {
	if strings.TrimSpace(favorite.UserID) == "" {
		return nil, newError(ValidationFailure, "user ID is required")
	}
	if strings.TrimSpace(favorite.ProductID) == "" {
		return nil, newError(ValidationFailure, "product ID is required")
	}

	if _, err := s.productRepo.GetByID(favorite.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "product not found")
		}
		return nil, newError(DependencyFailure, "failed to look up product %s: %v", favorite.ProductID, err)
	}
	if _, err := s.userRepo.GetByID(favorite.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "user not found")
		}
		return nil, newError(DependencyFailure, "failed to look up user %s: %v", favorite.UserID, err)
	}

	existing, err := s.favoriteRepo.GetByUserAndProduct(favorite.UserID, favorite.ProductID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(DependencyFailure, "failed to check existing favorite: %v", err)
	}
	if existing != nil {
		return nil, newError(Conflict, "product is already in favorites")
	}

	favorite.ID = ""
	favorite.CreatedAt = time.Now()

	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, newError(DependencyFailure, "failed to create favorite: %v", err)
	}
	return favorite, nil
}

// DeleteFavorite removes a favorite by its ID.
func (s *FavoriteService) DeleteFavorite(id string) error {
	removed, err := s.favoriteRepo.Delete(id)
	if err != nil {
		return newError(DependencyFailure, "failed to delete favorite %s: %v", id, err)
	}
	if !removed {
		return newError(ReferenceNotFound, "favorite not found")
	}
	return nil
}

// DeleteFavoriteByUserAndProduct removes a user's favorite for a product.
func (s *FavoriteService) DeleteFavoriteByUserAndProduct(userID, productID string) error {
	removed, err := s.favoriteRepo.DeleteByUserAndProduct(userID, productID)
	if err != nil {
		return newError(DependencyFailure, "failed to delete favorite by user %s for product %s: %v", userID, productID, err)
	}
	if !removed {
		return newError(ReferenceNotFound, "favorite not found")
	}
	return nil
}
