package handlers

import (
	"log"

	"ecomarket/internal/middleware"
	"ecomarket/internal/models"
	"ecomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/user/:userId", h.HandleGetUserOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(orders)
}

// HandleGetUserOrders retrieves all orders placed by a user.
func (h *OrderHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	userID := c.Params("userId")
	orders, err := h.service.GetUserOrders(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return errorResponse(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return errorResponse(c, err)
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order. Validation, total computation and
// stock reservation all happen in the service.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var orderRequest models.Order
	if err := c.BodyParser(&orderRequest); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	createdOrder, err := h.service.CreateOrder(orderRequest)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleUpdateOrderStatus updates the status of an existing order on behalf
// of the authenticated caller.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	err := h.service.UpdateOrderStatus(orderID, updateData.Status, middleware.CallerID(c), middleware.CallerIsAdmin(c))
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
	})
}

// HandleDeleteOrder deletes a pending order on behalf of the authenticated
// caller.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	err := h.service.DeleteOrder(orderID, middleware.CallerID(c), middleware.CallerIsAdmin(c))
	if err != nil {
		log.Printf("Error deleting order %s: %v", orderID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Order deleted successfully",
	})
}
