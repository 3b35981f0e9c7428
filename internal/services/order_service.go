package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
)

// EventPublisher publishes order lifecycle events to the message broker.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles order lifecycle management: validation and total
// computation, stock reservation, the status state machine, and stock
// release on cancellation and deletion.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	publisher   EventPublisher // may be nil; events are best-effort
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve orders: %v", err)
	}
	return orders, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "order not found")
		}
		return nil, newError(DependencyFailure, "failed to retrieve order %s: %v", id, err)
	}
	return order, nil
}

// GetUserOrders retrieves all orders placed by a user.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, newError(DependencyFailure, "failed to retrieve orders for user %s: %v", userID, err)
	}
	return orders, nil
}

// CreateOrder validates an order draft, computes its total from current
// product prices, inserts it as Pending and reserves stock for every line
// item.
//
// Validation is all-or-nothing: no stock is touched and nothing is inserted
// unless every item passes. Once the order is inserted, per-line stock
// decrements that fail to apply are logged and do not fail the creation;
// the order stands as created.
func (s *OrderService) CreateOrder(orderRequest models.Order) (*models.Order, error) {
	if strings.TrimSpace(orderRequest.UserID) == "" {
		return nil, newError(ValidationFailure, "user ID is required")
	}

	if _, err := s.userRepo.GetByID(orderRequest.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ReferenceNotFound, "user with ID %s not found", orderRequest.UserID)
		}
		return nil, newError(DependencyFailure, "failed to look up user %s: %v", orderRequest.UserID, err)
	}

	if orderRequest.ShippingAddress == (models.ShippingAddress{}) {
		return nil, newError(ValidationFailure, "shipping address is required")
	}

	if len(orderRequest.Items) == 0 {
		return nil, newError(ValidationFailure, "order must contain at least one item")
	}

	// Validate every item and snapshot unit prices before touching anything.
	var totalAmount float64
	processedItems := make([]models.OrderItem, 0, len(orderRequest.Items))
	for _, item := range orderRequest.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return nil, newError(ValidationFailure, "product ID is required for each order item")
		}
		if item.Quantity <= 0 {
			return nil, newError(ValidationFailure,
				"invalid quantity for product %s. Quantity must be greater than 0", item.ProductID)
		}

		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, newError(ReferenceNotFound, "product with ID %s not found", item.ProductID)
			}
			return nil, newError(DependencyFailure, "failed to look up product %s: %v", item.ProductID, err)
		}

		if product.StockQuantity < item.Quantity {
			return nil, newError(CapacityExceeded,
				"insufficient stock for product %s. Available: %d, Requested: %d",
				item.ProductID, product.StockQuantity, item.Quantity)
		}

		processedItems = append(processedItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price, // Unit price at the time of order
		})
		totalAmount += product.Price * float64(item.Quantity)
	}

	now := time.Now()
	newOrder := &models.Order{
		UserID:          orderRequest.UserID,
		Items:           processedItems,
		ShippingAddress: orderRequest.ShippingAddress,
		TotalAmount:     totalAmount,
		Status:          models.StatusPending,
		OrderDate:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, newError(DependencyFailure, "failed to create order: %v", err)
	}

	// Reserve stock, one product update per line item. Failures here are
	// reportable but non-fatal: the order already exists and is not rolled
	// back. See the deletion and cancellation paths for the release side.
	for _, item := range newOrder.Items {
		modified, err := s.productRepo.AdjustStock(item.ProductID, -item.Quantity)
		if err != nil {
			log.Printf("Warning: failed to decrement stock for product %s on order %s: %v",
				item.ProductID, newOrder.ID, err)
			continue
		}
		if !modified {
			log.Printf("Warning: stock decrement for product %s did not apply on order %s",
				item.ProductID, newOrder.ID)
		}
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID": newOrder.ID,
		"userID":  newOrder.UserID,
		"status":  newOrder.Status,
		"total":   newOrder.TotalAmount,
	})

	return newOrder, nil
}

// UpdateOrderStatus moves an order to a new status on behalf of a caller.
// The caller must own the order or be an admin, and the change must be a
// legal transition. Cancelling an order that has not shipped yet releases
// its reserved stock; refunds never do, since the goods already left
// inventory.
func (s *OrderService) UpdateOrderStatus(orderID, newStatus, callerID string, isAdmin bool) error {
	status, ok := models.NormalizeOrderStatus(newStatus)
	if !ok {
		return newError(ValidationFailure, "invalid status %q. Allowed statuses are: %s",
			newStatus, strings.Join(models.ValidOrderStatuses, ", "))
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "order not found")
		}
		return newError(DependencyFailure, "failed to retrieve order %s: %v", orderID, err)
	}

	if !isAdmin && order.UserID != callerID {
		return newError(AuthorizationDenied, "not authorized to update this order's status")
	}

	if !models.IsValidStatusTransition(order.Status, status) {
		return newError(IllegalTransition, "cannot transition from %s to %s", order.Status, status)
	}

	// Pre-shipment cancellation returns the reserved stock before the
	// status is persisted.
	if status == models.StatusCancelled &&
		(order.Status == models.StatusPending || order.Status == models.StatusProcessing) {
		s.releaseStock(order)
	}

	modified, err := s.orderRepo.UpdateStatus(orderID, status)
	if err != nil {
		return newError(DependencyFailure, "failed to update status for order %s: %v", orderID, err)
	}
	if !modified {
		return newError(Conflict, "order %s was not updated", orderID)
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"orderID": orderID,
		"status":  status,
	})

	return nil
}

// DeleteOrder removes a pending order on behalf of a caller. The caller must
// own the order or be an admin. Reserved stock is released before the record
// is deleted; per-line release failures are logged and do not block the
// deletion.
func (s *OrderService) DeleteOrder(orderID, callerID string, isAdmin bool) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ReferenceNotFound, "order not found")
		}
		return newError(DependencyFailure, "failed to retrieve order %s: %v", orderID, err)
	}

	if !isAdmin && order.UserID != callerID {
		return newError(AuthorizationDenied, "not authorized to delete this order")
	}

	if order.Status != models.StatusPending {
		return newError(AuthorizationDenied, "only pending orders can be deleted")
	}

	// Pending always implies reserved stock, so release unconditionally.
	s.releaseStock(order)

	removed, err := s.orderRepo.Delete(orderID)
	if err != nil {
		return newError(DependencyFailure, "failed to delete order %s: %v", orderID, err)
	}
	if !removed {
		return newError(Conflict, "order %s was not deleted", orderID)
	}

	return nil
}

// releaseStock reverses the stock reservation for every line item of an
// order. Individual failures are logged for operational follow-up and never
// abort the surrounding operation.
func (s *OrderService) releaseStock(order *models.Order) {
	for _, item := range order.Items {
		modified, err := s.productRepo.AdjustStock(item.ProductID, item.Quantity)
		if err != nil {
			log.Printf("Warning: failed to restore stock for product %s on order %s: %v",
				item.ProductID, order.ID, err)
			continue
		}
		if !modified {
			log.Printf("Warning: stock restore for product %s did not apply on order %s",
				item.ProductID, order.ID)
		}
	}
}

// publishEvent sends an order event to the broker, if one is configured.
// Publish failures are logged and never surfaced to the caller.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
