package services

import (
	"errors"
	"strings"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetProducts retrieves a page of products.
func (s *ProductService) GetProducts(params models.PaginationParams) (models.PaginatedResponse[models.Product], error) {
	return s.paginated(s.repo.GetAll, params)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "product not found")
		}
		return nil, newError(DependencyFailure, "failed to retrieve product %s: %v", id, err)
	}
	return product, nil
}

// SearchProducts retrieves a page of products matching the query by name,
// description or eco feature.
func (s *ProductService) SearchProducts(query string, params models.PaginationParams) (models.PaginatedResponse[models.Product], error) {
	if strings.TrimSpace(query) == "" {
		return models.PaginatedResponse[models.Product]{}, newError(ValidationFailure, "search query cannot be empty")
	}
	return s.paginated(func(p models.PaginationParams) ([]models.Product, int, error) {
		return s.repo.Search(query, p)
	}, params)
}

// GetProductsByCategory retrieves a page of products in the given category.
func (s *ProductService) GetProductsByCategory(category string, params models.PaginationParams) (models.PaginatedResponse[models.Product], error) {
	return s.paginated(func(p models.PaginationParams) ([]models.Product, int, error) {
		return s.repo.GetByCategory(category, p)
	}, params)
}

// GetEcoFriendlyProducts retrieves a page of products flagged eco-friendly.
func (s *ProductService) GetEcoFriendlyProducts(params models.PaginationParams) (models.PaginatedResponse[models.Product], error) {
	return s.paginated(s.repo.GetEcoFriendly, params)
}

// GetProductsBySeller retrieves all products listed by a seller.
func (s *ProductService) GetProductsBySeller(sellerID string) ([]models.Product, error) {
	products, err := s.repo.GetBySeller(sellerID)
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve products for seller %s: %v", sellerID, err)
	}
	return products, nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return newError(DependencyFailure, "failed to create product: %v", err)
	}
	return nil
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "product not found")
		}
		return newError(DependencyFailure, "failed to update product %s: %v", product.ID, err)
	}
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "product not found")
		}
		return newError(DependencyFailure, "failed to delete product %s: %v", id, err)
	}
	return nil
}

// paginated wraps a counted repository listing into a paginated response.
func (s *ProductService) paginated(list func(models.PaginationParams) ([]models.Product, int, error),
	params models.PaginationParams) (models.PaginatedResponse[models.Product], error) {
	products, total, err := list(params)
	if err != nil {
		return models.PaginatedResponse[models.Product]{}, newError(DependencyFailure, "failed to list products: %v", err)
	}
	pageNumber, pageSize := params.Validated()
	return models.NewPaginatedResponse(products, total, pageNumber, pageSize), nil
}
