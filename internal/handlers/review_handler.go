package handlers

import (
	"log"

	"ecomarket/internal/middleware"
	"ecomarket/internal/models"
	"ecomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Get("/user", h.HandleGetUserReviews)
	reviewRoutes.Get("/product/:productId", h.HandleGetProductReviews)
	reviewRoutes.Get("/:id", h.HandleGetReviewByID)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Put("/:id", h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// HandleGetReviews retrieves all reviews.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAllReviews()
	if err != nil {
		log.Printf("Error getting all reviews: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(reviews)
}

// HandleGetUserReviews retrieves the authenticated caller's reviews.
func (h *ReviewHandler) HandleGetUserReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetUserReviews(middleware.CallerID(c))
	if err != nil {
		log.Printf("Error getting user reviews: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(reviews)
}

// HandleGetProductReviews retrieves a page of reviews for a product.
func (h *ReviewHandler) HandleGetProductReviews(c *fiber.Ctx) error {
	response, err := h.service.GetProductReviews(c.Params("productId"), paginationParams(c))
	if err != nil {
		log.Printf("Error getting product reviews: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(response)
}

// HandleGetReviewByID retrieves a single review by its ID.
func (h *ReviewHandler) HandleGetReviewByID(c *fiber.Ctx) error {
	review, err := h.service.GetReviewByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting review by ID %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}
	return c.JSON(review)
}

// HandleCreateReview creates a review on behalf of the authenticated caller.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing review request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.service.CreateReview(&review, middleware.CallerID(c))
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateReview updates the authenticated caller's own review.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing review update request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.service.UpdateReview(c.Params("id"), &review, middleware.CallerID(c)); err != nil {
		log.Printf("Error updating review %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}

	return c.JSON(review)
}

// HandleDeleteReview deletes the authenticated caller's own review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(c.Params("id"), middleware.CallerID(c)); err != nil {
		log.Printf("Error deleting review %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
