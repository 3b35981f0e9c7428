package repositories

import (
	"errors"
	"fmt"

	"ecomarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// paginate runs a counted, paginated query against the given base query.
func (r *GORMProductRepository) paginate(query *gorm.DB, params models.PaginationParams) ([]models.Product, int, error) {
	pageNumber, pageSize := params.Validated()

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, int(total), nil
}

// GetAll retrieves a page of products from the database.
func (r *GORMProductRepository) GetAll(params models.PaginationParams) ([]models.Product, int, error) {
	return r.paginate(r.db.Model(&models.Product{}), params)
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Search retrieves products whose name, description or eco features match
// the query, case-insensitively.
func (r *GORMProductRepository) Search(query string, params models.PaginationParams) ([]models.Product, int, error) {
	pattern := "%" + query + "%"
	q := r.db.Model(&models.Product{}).
		Where("name LIKE ? OR description LIKE ? OR eco_features LIKE ?", pattern, pattern, pattern)
	return r.paginate(q, params)
}

// GetByCategory retrieves a page of products in the given category.
func (r *GORMProductRepository) GetByCategory(category string, params models.PaginationParams) ([]models.Product, int, error) {
	return r.paginate(r.db.Model(&models.Product{}).Where("category = ?", category), params)
}

// GetEcoFriendly retrieves a page of products flagged as eco-friendly.
func (r *GORMProductRepository) GetEcoFriendly(params models.PaginationParams) ([]models.Product, int, error) {
	return r.paginate(r.db.Model(&models.Product{}).Where("is_eco_friendly = ?", true), params)
}

// GetBySeller retrieves all products listed by a seller.
func (r *GORMProductRepository) GetBySeller(sellerID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "seller_id = ?", sellerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for seller %s: %w", sellerID, err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// AdjustStock applies a relative change to a product's stock quantity as a
// single UPDATE, so the individual write is atomic even though a multi-line
// order applies several of them independently.
func (r *GORMProductRepository) AdjustStock(id string, delta int) (bool, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if res.Error != nil {
		return false, fmt.Errorf("failed to adjust stock for product %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// UpdateRating stores the recomputed review aggregate for a product.
func (r *GORMProductRepository) UpdateRating(id string, averageRating float64, reviewCount int) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"review_count":   reviewCount,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update rating for product %s: %w", id, res.Error)
	}
	return nil
}
