package services_test

import (
	"testing"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
	"ecomarket/internal/services"

	"github.com/stretchr/testify/assert"
)

type reviewFixture struct {
	service     *services.ReviewService
	reviewRepo  *repositories.MockReviewRepository
	productRepo *repositories.MockProductRepository
	userRepo    *repositories.MockUserRepository
}

func newReviewFixture() *reviewFixture {
	reviewRepo := repositories.NewMockReviewRepository()
	productRepo := repositories.NewMockProductRepository()
	userRepo := repositories.NewMockUserRepository()

	_ = userRepo.Create(&models.User{ID: "u1", Email: "u1@example.com", Password: "x", Name: "User One"})
	_ = userRepo.Create(&models.User{ID: "u2", Email: "u2@example.com", Password: "x", Name: "User Two"})
	_ = productRepo.Create(&models.Product{ID: "p1", Name: "Bamboo Cup", SellerID: "s1", StockQuantity: 5})

	return &reviewFixture{
		service:     services.NewReviewService(reviewRepo, productRepo, userRepo),
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (f *reviewFixture) rating(t *testing.T, productID string) (float64, int) {
	t.Helper()
	product, err := f.productRepo.GetByID(productID)
	assert.NoError(t, err)
	return product.AverageRating, product.ReviewCount
}

func TestReviewService_CreateReview(t *testing.T) {
	f := newReviewFixture()

	review, err := f.service.CreateReview(&models.Review{ProductID: "p1", Rating: 4, Comment: "Solid cup"}, "u1")

	assert.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "u1", review.UserID)

	average, count := f.rating(t, "p1")
	assert.Equal(t, 4.0, average)
	assert.Equal(t, 1, count)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	tests := []struct {
		name     string
		review   models.Review
		userID   string
		wantKind services.ErrorKind
	}{
		{"blank user", models.Review{ProductID: "p1", Rating: 4, Comment: "ok"}, " ", services.ValidationFailure},
		{"blank product", models.Review{Rating: 4, Comment: "ok"}, "u1", services.ValidationFailure},
		{"blank comment", models.Review{ProductID: "p1", Rating: 4, Comment: "  "}, "u1", services.ValidationFailure},
		{"rating too low", models.Review{ProductID: "p1", Rating: 0, Comment: "ok"}, "u1", services.ValidationFailure},
		{"rating too high", models.Review{ProductID: "p1", Rating: 6, Comment: "ok"}, "u1", services.ValidationFailure},
		{"unknown user", models.Review{ProductID: "p1", Rating: 4, Comment: "ok"}, "ghost", services.ReferenceNotFound},
		{"unknown product", models.Review{ProductID: "missing", Rating: 4, Comment: "ok"}, "u1", services.ReferenceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReviewFixture()
			review := tt.review

			_, err := f.service.CreateReview(&review, tt.userID)

			assert.True(t, services.IsKind(err, tt.wantKind), "got error %v", err)
		})
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	f := newReviewFixture()

	_, err := f.service.CreateReview(&models.Review{ProductID: "p1", Rating: 4, Comment: "First"}, "u1")
	assert.NoError(t, err)

	_, err = f.service.CreateReview(&models.Review{ProductID: "p1", Rating: 5, Comment: "Second"}, "u1")
	assert.True(t, services.IsKind(err, services.Conflict))

	// A different user may still review the same product.
	_, err = f.service.CreateReview(&models.Review{ProductID: "p1", Rating: 2, Comment: "Meh"}, "u2")
	assert.NoError(t, err)

	average, count := f.rating(t, "p1")
	assert.Equal(t, 3.0, average)
	assert.Equal(t, 2, count)
}

func TestReviewService_UpdateReview(t *testing.T) {
	f := newReviewFixture()
	review, err := f.service.CreateReview(&models.Review{ProductID: "p1", Rating: 2, Comment: "Early take"}, "u1")
	assert.NoError(t, err)

	// Only the author may update.
	err = f.service.UpdateReview(review.ID, &models.Review{Rating: 5, Comment: "Changed my mind"}, "u2")
	assert.True(t, services.IsKind(err, services.AuthorizationDenied))

	err = f.service.UpdateReview(review.ID, &models.Review{Rating: 9, Comment: "Changed my mind"}, "u1")
	assert.True(t, services.IsKind(err, services.ValidationFailure))

	err = f.service.UpdateReview(review.ID, &models.Review{ProductID: "hijack", Rating: 5, Comment: "Changed my mind"}, "u1")
	assert.NoError(t, err)

	updated, err := f.service.GetReviewByID(review.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	// The reviewed product cannot be changed after the fact.
	assert.Equal(t, "p1", updated.ProductID)

	average, count := f.rating(t, "p1")
	assert.Equal(t, 5.0, average)
	assert.Equal(t, 1, count)
}

func TestReviewService_DeleteReview(t *testing.T) {
	f := newReviewFixture()
	review, err := f.service.CreateReview(&models.Review{ProductID: "p1", Rating: 4, Comment: "Solid"}, "u1")
	assert.NoError(t, err)

	err = f.service.DeleteReview(review.ID, "u2")
	assert.True(t, services.IsKind(err, services.AuthorizationDenied))

	err = f.service.DeleteReview("missing", "u1")
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))

	assert.NoError(t, f.service.DeleteReview(review.ID, "u1"))

	// The aggregate resets once the last review is gone.
	average, count := f.rating(t, "p1")
	assert.Equal(t, 0.0, average)
	assert.Equal(t, 0, count)
}

func TestReviewService_GetProductReviews_Pagination(t *testing.T) {
	f := newReviewFixture()
	for i, userID := range []string{"u1", "u2"} {
		_, err := f.service.CreateReview(&models.Review{ProductID: "p1", Rating: i + 3, Comment: "Review"}, userID)
		assert.NoError(t, err)
	}

	page, err := f.service.GetProductReviews("p1", models.PaginationParams{PageNumber: 1, PageSize: 1})

	assert.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)
}
