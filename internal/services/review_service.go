package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
)

// ReviewService handles business logic related to product reviews, including
// keeping the product rating aggregate up to date.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// GetAllReviews retrieves all reviews.
func (s *ReviewService) GetAllReviews() ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetAll()
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve reviews: %v", err)
	}
	return reviews, nil
}

// GetReviewByID retrieves a single review by its ID.
func (s *ReviewService) GetReviewByID(id string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "review not found")
		}
		return nil, newError(DependencyFailure, "failed to retrieve review %s: %v", id, err)
	}
	return review, nil
}

// GetProductReviews retrieves a page of reviews for a product.
func (s *ReviewService) GetProductReviews(productID string, params models.PaginationParams) (models.PaginatedResponse[models.Review], error) {
	reviews, total, err := s.reviewRepo.GetByProduct(productID, params)
	if err != nil {
		return models.PaginatedResponse[models.Review]{}, newError(DependencyFailure,
			"failed to retrieve reviews for product %s: %v", productID, err)
	}
	pageNumber, pageSize := params.Validated()
	return models.NewPaginatedResponse(reviews, total, pageNumber, pageSize), nil
}

// GetUserReviews retrieves all reviews written by a user.
func (s *ReviewService) GetUserReviews(userID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetByUser(userID)
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve reviews for user %s: %v", userID, err)
	}
	return reviews, nil
}

// CreateReview creates a review on behalf of a user. The user and product
// must exist, the rating must be 1..5 and a user may only review a product
// once. The product's rating aggregate is recomputed afterwards.
func (s *ReviewService) CreateReview(review *models.Review, userID string) (*models.Review, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, newError(ValidationFailure, "user ID is required")
	}
	if strings.TrimSpace(review.ProductID) == "" {
		return nil, newError(ValidationFailure, "product ID is required")
	}
	if strings.TrimSpace(review.Comment) == "" {
		return nil, newError(ValidationFailure, "comment cannot be empty")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, newError(ValidationFailure, "rating must be between 1 and 5")
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "user not found")
		}
		return nil, newError(DependencyFailure, "failed to look up user %s: %v", userID, err)
	}
	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "product not found")
		}
		return nil, newError(DependencyFailure, "failed to look up product %s: %v", review.ProductID, err)
	}

	existing, err := s.reviewRepo.GetByUserAndProduct(userID, review.ProductID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(DependencyFailure, "failed to check existing review: %v", err)
	}
	if existing != nil {
		return nil, newError(Conflict, "you have already reviewed this product")
	}

	now := time.Now()
	review.ID = ""
	review.UserID = userID
	review.CreatedAt = now
	review.UpdatedAt = now

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, newError(DependencyFailure, "failed to create review: %v", err)
	}

	s.updateProductRating(review.ProductID)

	return review, nil
}

// UpdateReview updates a user's own review and recomputes the product
// rating aggregate.
func (s *ReviewService) UpdateReview(id string, updated *models.Review, userID string) error {
	existing, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "review not found")
		}
		return newError(DependencyFailure, "failed to retrieve review %s: %v", id, err)
	}

	if existing.UserID != userID {
		return newError(AuthorizationDenied, "you can only update your own reviews")
	}

	if updated.Rating < 1 || updated.Rating > 5 {
		return newError(ValidationFailure, "rating must be between 1 and 5")
	}

	updated.ID = id
	updated.UserID = userID
	updated.ProductID = existing.ProductID // The reviewed product cannot change
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.reviewRepo.Update(updated); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(Conflict, "review %s was not updated", id)
		}
		return newError(DependencyFailure, "failed to update review %s: %v", id, err)
	}

	s.updateProductRating(updated.ProductID)

	return nil
}

// DeleteReview deletes a user's own review and recomputes the product
// rating aggregate.
func (s *ReviewService) DeleteReview(id, userID string) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "review not found")
		}
		return newError(DependencyFailure, "failed to retrieve review %s: %v", id, err)
	}

	if review.UserID != userID {
		return newError(AuthorizationDenied, "you can only delete your own reviews")
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(Conflict, "review %s was not deleted", id)
		}
		return newError(DependencyFailure, "failed to delete review %s: %v", id, err)
	}

	s.updateProductRating(review.ProductID)

	return nil
}

// updateProductRating recomputes and stores a product's average rating and
// review count. Failures are logged; the review write already succeeded.
func (s *ReviewService) updateProductRating(productID string) {
	reviews, err := s.reviewRepo.GetAllByProduct(productID)
	if err != nil {
		log.Printf("Warning: failed to load reviews for product %s: %v", productID, err)
		return
	}
	if len(reviews) == 0 {
		if err := s.productRepo.UpdateRating(productID, 0, 0); err != nil {
			log.Printf("Warning: failed to reset rating for product %s: %v", productID, err)
		}
		return
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	average := float64(sum) / float64(len(reviews))

	if err := s.productRepo.UpdateRating(productID, average, len(reviews)); err != nil {
		log.Printf("Warning: failed to update rating for product %s: %v", productID, err)
	}
}
