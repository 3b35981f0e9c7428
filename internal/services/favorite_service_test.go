package services_test

import (
	"testing"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
	"ecomarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func newFavoriteService() *services.FavoriteService {
	favoriteRepo := repositories.NewMockFavoriteRepository()
	productRepo := repositories.NewMockProductRepository()
	userRepo := repositories.NewMockUserRepository()

	_ = userRepo.Create(&models.User{ID: "u1", Email: "u1@example.com", Password: "x", Name: "User One"})
	_ = productRepo.Create(&models.Product{ID: "p1", Name: "Bamboo Cup", SellerID: "s1"})

	return services.NewFavoriteService(favoriteRepo, productRepo, userRepo)
}

func TestFavoriteService_CreateFavorite(t *testing.T) {
	service := newFavoriteService()

	favorite, err := service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: "p1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, favorite.ID)
	assert.False(t, favorite.CreatedAt.IsZero())

	saved, err := service.GetUserFavorites("u1")
	assert.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestFavoriteService_CreateFavorite_Failures(t *testing.T) {
	service := newFavoriteService()

	_, err := service.CreateFavorite(&models.Favorite{UserID: "", ProductID: "p1"})
	assert.True(t, services.IsKind(err, services.ValidationFailure))

	_, err = service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: ""})
	assert.True(t, services.IsKind(err, services.ValidationFailure))

	_, err = service.CreateFavorite(&models.Favorite{UserID: "ghost", ProductID: "p1"})
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))

	_, err = service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: "missing"})
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))

	_, err = service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: "p1"})
	assert.NoError(t, err)
	_, err = service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: "p1"})
	assert.True(t, services.IsKind(err, services.Conflict))
}

func TestFavoriteService_DeleteFavorite(t *testing.T) {
	service := newFavoriteService()
	favorite, err := service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: "p1"})
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteFavorite(favorite.ID))

	err = service.DeleteFavorite(favorite.ID)
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))
}

func TestFavoriteService_DeleteFavoriteByUserAndProduct(t *testing.T) {
	service := newFavoriteService()
	_, err := service.CreateFavorite(&models.Favorite{UserID: "u1", ProductID: "p1"})
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteFavoriteByUserAndProduct("u1", "p1"))

	err = service.DeleteFavoriteByUserAndProduct("u1", "p1")
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))
}
