package repositories

import (
	"ecomarket/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	Create(order *models.Order) error

	// UpdateStatus persists a new status and bumps the order's UpdatedAt.
	// It reports whether a record was actually modified, so callers can
	// detect a lost race with a concurrent delete.
	UpdateStatus(id string, status string) (bool, error)

	// Delete removes the order record and its line items, reporting
	// whether anything was removed.
	Delete(id string) (bool, error)
}
