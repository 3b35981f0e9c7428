package handlers

import (
	"log"

	"ecomarket/internal/middleware"
	"ecomarket/internal/models"
	"ecomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for favorites.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleGetFavorites)
	favoriteRoutes.Get("/user/:userId", h.HandleGetUserFavorites)
	favoriteRoutes.Get("/:id", h.HandleGetFavoriteByID)
	favoriteRoutes.Post("/", h.HandleCreateFavorite)
	favoriteRoutes.Delete("/user/:userId/product/:productId", h.HandleDeleteFavoriteByUserAndProduct)
	favoriteRoutes.Delete("/:id", h.HandleDeleteFavorite)
}

// HandleGetFavorites retrieves all favorites.
func (h *FavoriteHandler) HandleGetFavorites(c *fiber.Ctx) error {
	favorites, err := h.service.GetAllFavorites()
	if err != nil {
		log.Printf("Error getting all favorites: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(favorites)
}

// HandleGetUserFavorites retrieves all favorites saved by a user.
func (h *FavoriteHandler) HandleGetUserFavorites(c *fiber.Ctx) error {
	favorites, err := h.service.GetUserFavorites(c.Params("userId"))
	if err != nil {
		log.Printf("Error getting favorites for user %s: %v", c.Params("userId"), err)
		return errorResponse(c, err)
	}
	return c.JSON(favorites)
}

// HandleGetFavoriteByID retrieves a single favorite by its ID.
func (h *FavoriteHandler) HandleGetFavoriteByID(c *fiber.Ctx) error {
	favorite, err := h.service.GetFavoriteByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting favorite by ID %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}
	return c.JSON(favorite)
}

// HandleCreateFavorite saves a product to the caller's favorites. Callers
// may only add favorites for themselves.
func (h *FavoriteHandler) HandleCreateFavorite(c *fiber.Ctx) error {
	var favorite models.Favorite
	if err := c.BodyParser(&favorite); err != nil {
		log.Printf("Error parsing favorite request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if favorite.UserID == "" {
		favorite.UserID = middleware.CallerID(c)
	}
	if favorite.UserID != middleware.CallerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only add favorites for your own user ID",
		})
	}

	created, err := h.service.CreateFavorite(&favorite)
	if err != nil {
		log.Printf("Error creating favorite: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleDeleteFavorite removes a favorite by its ID.
func (h *FavoriteHandler) HandleDeleteFavorite(c *fiber.Ctx) error {
	if err := h.service.DeleteFavorite(c.Params("id")); err != nil {
		log.Printf("Error deleting favorite %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Favorite deleted successfully",
	})
}

// HandleDeleteFavoriteByUserAndProduct removes a user's favorite for a
// product.
func (h *FavoriteHandler) HandleDeleteFavoriteByUserAndProduct(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID != middleware.CallerID(c) && !middleware.CallerIsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only remove your own favorites",
		})
	}

	if err := h.service.DeleteFavoriteByUserAndProduct(userID, c.Params("productId")); err != nil {
		log.Printf("Error deleting favorite for user %s product %s: %v", userID, c.Params("productId"), err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Favorite deleted successfully",
	})
}
