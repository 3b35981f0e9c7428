package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"ecomarket/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// all returns every stored product ordered by ID for stable pagination.
func (r *MockProductRepository) all() []models.Product {
	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList
}

func paginateProducts(products []models.Product, params models.PaginationParams) ([]models.Product, int) {
	pageNumber, pageSize := params.Validated()
	total := len(products)

	start := (pageNumber - 1) * pageSize
	if start >= total {
		return []models.Product{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return products[start:end], total
}

// GetAll returns a page of products.
func (r *MockProductRepository) GetAll(params models.PaginationParams) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, total := paginateProducts(r.all(), params)
	return page, total, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Search returns products whose name, description or eco features contain
// the query, ignoring case.
func (r *MockProductRepository) Search(query string, params models.PaginationParams) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var matched []models.Product
	for _, p := range r.all() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			containsFold(p.EcoFeatures, query) {
			matched = append(matched, p)
		}
	}
	page, total := paginateProducts(matched, params)
	return page, total, nil
}

func containsFold(values []string, query string) bool {
	for _, v := range values {
		if strings.EqualFold(v, query) {
			return true
		}
	}
	return false
}

// GetByCategory returns a page of products in the given category.
func (r *MockProductRepository) GetByCategory(category string, params models.PaginationParams) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.all() {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	page, total := paginateProducts(matched, params)
	return page, total, nil
}

// GetEcoFriendly returns a page of eco-friendly products.
func (r *MockProductRepository) GetEcoFriendly(params models.PaginationParams) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.all() {
		if p.IsEcoFriendly {
			matched = append(matched, p)
		}
	}
	page, total := paginateProducts(matched, params)
	return page, total, nil
}

// GetBySeller returns all products listed by a seller.
func (r *MockProductRepository) GetBySeller(sellerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.all() {
		if p.SellerID == sellerID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// AdjustStock applies a relative stock change to a product.
func (r *MockProductRepository) AdjustStock(id string, delta int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return false, nil
	}
	product.StockQuantity += delta
	r.products[id] = product
	return true, nil
}

// UpdateRating stores the recomputed review aggregate for a product.
func (r *MockProductRepository) UpdateRating(id string, averageRating float64, reviewCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product.AverageRating = averageRating
	product.ReviewCount = reviewCount
	r.products[id] = product
	return nil
}
