package services_test

import (
	"testing"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
	"ecomarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func newUserService() (*services.UserService, *repositories.MockUserRepository) {
	repo := repositories.NewMockUserRepository()
	return services.NewUserService(repo), repo
}

func TestUserService_GetUserByID(t *testing.T) {
	service, repo := newUserService()
	_ = repo.Create(&models.User{ID: "u1", Email: "u1@example.com", Password: "hash", Name: "User One"})

	user, err := service.GetUserByID("u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1@example.com", user.Email)

	_, err = service.GetUserByID("missing")
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))
}

func TestUserService_UpdateUser(t *testing.T) {
	service, repo := newUserService()
	_ = repo.Create(&models.User{ID: "u1", Email: "u1@example.com", Password: "hash", Name: "User One", Role: "seller"})

	err := service.UpdateUser("missing", &models.User{Name: "Nope"})
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))

	// Blank password and role keep the stored values.
	err = service.UpdateUser("u1", &models.User{Email: "u1@example.com", Name: "Renamed", Phone: "555-0100"})
	assert.NoError(t, err)

	updated, err := service.GetUserByID("u1")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "hash", updated.Password)
	assert.Equal(t, "seller", updated.Role)
}

func TestUserService_DeleteUser(t *testing.T) {
	service, repo := newUserService()
	_ = repo.Create(&models.User{ID: "u1", Email: "u1@example.com", Password: "hash", Name: "User One"})

	assert.NoError(t, service.DeleteUser("u1"))

	err := service.DeleteUser("u1")
	assert.True(t, services.IsKind(err, services.ReferenceNotFound))
}
