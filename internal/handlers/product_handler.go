package handlers

import (
	"log"

	"ecomarket/internal/middleware"
	"ecomarket/internal/models"
	"ecomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Specific
// paths are registered before the :id parameter so they are not captured.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/eco-friendly", h.HandleGetEcoFriendlyProducts)
	productRoutes.Get("/category/:category", h.HandleGetProductsByCategory)
	productRoutes.Get("/seller/:sellerId", h.HandleGetProductsBySeller)
	productRoutes.Get("/:id", h.HandleGetProductByID)

	sellerOnly := middleware.RoleRequired("admin", "seller")
	productRoutes.Post("/", sellerOnly, h.HandleCreateProduct)
	productRoutes.Put("/:id", sellerOnly, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", sellerOnly, h.HandleDeleteProduct)
}

func paginationParams(c *fiber.Ctx) models.PaginationParams {
	return models.PaginationParams{
		PageNumber: c.QueryInt("page_number"),
		PageSize:   c.QueryInt("page_size"),
	}
}

// HandleGetProducts retrieves a page of products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	response, err := h.service.GetProducts(paginationParams(c))
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

// HandleSearchProducts retrieves a page of products matching a query.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	response, err := h.service.SearchProducts(c.Query("q"), paginationParams(c))
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

// HandleGetEcoFriendlyProducts retrieves a page of eco-friendly products.
func (h *ProductHandler) HandleGetEcoFriendlyProducts(c *fiber.Ctx) error {
	response, err := h.service.GetEcoFriendlyProducts(paginationParams(c))
	if err != nil {
		log.Printf("Error getting eco-friendly products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

// HandleGetProductsByCategory retrieves a page of products in a category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	response, err := h.service.GetProductsByCategory(c.Params("category"), paginationParams(c))
	if err != nil {
		log.Printf("Error getting products by category: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

// HandleGetProductsBySeller retrieves all products listed by a seller.
func (h *ProductHandler) HandleGetProductsBySeller(c *fiber.Ctx) error {
	products, err := h.service.GetProductsBySeller(c.Params("sellerId"))
	if err != nil {
		log.Printf("Error getting products by seller: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product. Sellers may only list products
// under their own seller ID.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if product.SellerID == "" {
		product.SellerID = middleware.CallerID(c)
	}

	if err := validate.Struct(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if middleware.CallerRole(c) == "seller" && product.SellerID != middleware.CallerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Sellers can only list products under their own seller ID",
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product. Sellers may only update
// their own products.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	existing, err := h.service.GetProductByID(productID)
	if err != nil {
		return errorResponse(c, err)
	}

	if middleware.CallerRole(c) == "seller" && existing.SellerID != middleware.CallerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Sellers can only update their own products",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product update request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product.ID = productID
	product.SellerID = existing.SellerID
	product.CreatedAt = existing.CreatedAt

	if err := validate.Struct(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return errorResponse(c, err)
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product. Sellers may only delete their own
// products.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	existing, err := h.service.GetProductByID(productID)
	if err != nil {
		return errorResponse(c, err)
	}

	if middleware.CallerRole(c) == "seller" && existing.SellerID != middleware.CallerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Sellers can only delete their own products",
		})
	}

	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
