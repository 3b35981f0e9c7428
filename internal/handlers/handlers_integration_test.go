package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecomarket/internal/handlers"
	"ecomarket/internal/middleware"
	"ecomarket/internal/models"
	"ecomarket/internal/repositories"
	"ecomarket/internal/services"
)

var dbCounter int64

// setupTestApp wires the full HTTP stack against a fresh in-memory SQLite
// database, mirroring the wiring in main.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Favorite{},
	))

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	authService := services.NewAuthService(userRepo, "integration-test-secret")
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo, nil)
	reviewService := services.NewReviewService(reviewRepo, productRepo, userRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, productRepo, userRepo)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewAuthHandler(authService).RegisterProtectedRoutes(protected)
	handlers.NewUserHandler(userService).RegisterRoutes(protected)
	handlers.NewProductHandler(productService).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(protected)
	handlers.NewFavoriteHandler(favoriteService).RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "time": time.Now().Format(time.RFC3339)})
	})

	return app
}

// doRequest performs a request against the app and decodes the JSON body.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// List endpoints return arrays; callers asserting on fields get a map.
	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// registerUser registers an account and returns its ID and token.
func registerUser(t *testing.T, app *fiber.App, email, role string) (string, string) {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email":    email,
		"password": "secret123",
		"name":     "Test " + role,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, status, "register body: %v", body)

	user := body["user"].(map[string]interface{})
	return user["id"].(string), body["token"].(string)
}

// createProduct lists a product under the given seller token and returns its ID.
func createProduct(t *testing.T, app *fiber.App, sellerToken string, name string, price float64, stock int) string {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/products", sellerToken, fiber.Map{
		"name":           name,
		"description":    "Test product",
		"category":       "kitchen",
		"price":          price,
		"stock_quantity": stock,
	})
	require.Equal(t, http.StatusCreated, status, "create product body: %v", body)
	return body["id"].(string)
}

func productStock(t *testing.T, app *fiber.App, token, productID string) int {
	t.Helper()

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/products/"+productID, token, nil)
	require.Equal(t, http.StatusOK, status)
	return int(body["stock_quantity"].(float64))
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestAuthEndpoints(t *testing.T) {
	app := setupTestApp(t)

	userID, token := registerUser(t, app, "alice@example.com", "user")
	assert.NotEmpty(t, userID)
	assert.NotEmpty(t, token)

	// Duplicate email is rejected.
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email": "alice@example.com", "password": "secret123", "name": "Alice Again",
	})
	assert.Equal(t, http.StatusConflict, status)

	// Weak payloads fail validation before reaching the service.
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"email": "bob@example.com", "password": "123", "name": "Bob",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice@example.com", body["email"])

	// Protected routes require a token.
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProductEndpoints(t *testing.T) {
	app := setupTestApp(t)
	_, sellerToken := registerUser(t, app, "seller@example.com", "seller")
	_, buyerToken := registerUser(t, app, "buyer@example.com", "user")

	// Plain users may not list products.
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/products", buyerToken, fiber.Map{
		"name": "Sneaky Product", "description": "x", "category": "misc", "price": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, status)

	productID := createProduct(t, app, sellerToken, "Bamboo Cutlery", 12.50, 7)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/products", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total_items"])

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/products/search?q=bamboo", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].(map[string]interface{})["id"])

	// Empty search queries are rejected.
	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/products/search?q=", buyerToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func orderPayload(userID, productID string, quantity int) fiber.Map {
	return fiber.Map{
		"user_id": userID,
		"items":   []fiber.Map{{"product_id": productID, "quantity": quantity}},
		"shipping_address": fiber.Map{
			"street": "1 Main St", "city": "Springfield", "state": "IL",
			"zip_code": "62701", "country": "USA",
		},
	}
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	app := setupTestApp(t)
	_, sellerToken := registerUser(t, app, "seller@example.com", "seller")
	buyerID, buyerToken := registerUser(t, app, "buyer@example.com", "user")
	_, strangerToken := registerUser(t, app, "stranger@example.com", "user")

	productID := createProduct(t, app, sellerToken, "Bamboo Cup", 10.00, 5)

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/orders", buyerToken,
		orderPayload(buyerID, productID, 2))
	require.Equal(t, http.StatusCreated, status, "create order body: %v", body)
	orderID := body["id"].(string)
	assert.Equal(t, "Pending", body["status"])
	assert.Equal(t, 20.00, body["total_amount"])
	assert.Equal(t, 3, productStock(t, app, buyerToken, productID))

	// Ordering more than the remaining stock fails and changes nothing.
	status, body = doRequest(t, app, http.MethodPost, "/api/v1/orders", buyerToken,
		orderPayload(buyerID, productID, 4))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "Available: 3, Requested: 4")
	assert.Equal(t, 3, productStock(t, app, buyerToken, productID))

	// Strangers may not touch someone else's order.
	status, _ = doRequest(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", strangerToken,
		fiber.Map{"status": "Processing"})
	assert.Equal(t, http.StatusForbidden, status)

	// Unknown statuses are rejected.
	status, _ = doRequest(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", buyerToken,
		fiber.Map{"status": "Returned"})
	assert.Equal(t, http.StatusBadRequest, status)

	// Status values are recognised regardless of case.
	status, _ = doRequest(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", buyerToken,
		fiber.Map{"status": "processing"})
	assert.Equal(t, http.StatusOK, status)

	// Cancelling before shipment returns the reserved stock.
	status, _ = doRequest(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", buyerToken,
		fiber.Map{"status": "Cancelled"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, productStock(t, app, buyerToken, productID))

	// Cancelled is terminal.
	status, _ = doRequest(t, app, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", buyerToken,
		fiber.Map{"status": "Shipped"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/orders/"+orderID, buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cancelled", body["status"])
}

func TestOrderDeleteEndpoints(t *testing.T) {
	app := setupTestApp(t)
	_, sellerToken := registerUser(t, app, "seller@example.com", "seller")
	buyerID, buyerToken := registerUser(t, app, "buyer@example.com", "user")
	_, strangerToken := registerUser(t, app, "stranger@example.com", "user")

	productID := createProduct(t, app, sellerToken, "Hemp Tote", 25.00, 4)

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/orders", buyerToken,
		orderPayload(buyerID, productID, 3))
	require.Equal(t, http.StatusCreated, status)
	orderID := body["id"].(string)
	assert.Equal(t, 1, productStock(t, app, buyerToken, productID))

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/orders/"+orderID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/orders/"+orderID, buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, productStock(t, app, buyerToken, productID))

	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/orders/"+orderID, buyerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/orders/"+orderID, buyerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReviewAndFavoriteEndpoints(t *testing.T) {
	app := setupTestApp(t)
	_, sellerToken := registerUser(t, app, "seller@example.com", "seller")
	userID, userToken := registerUser(t, app, "reviewer@example.com", "user")

	productID := createProduct(t, app, sellerToken, "Steel Straw", 5.00, 10)

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/reviews", userToken, fiber.Map{
		"product_id": productID, "rating": 4, "comment": "Works well",
	})
	require.Equal(t, http.StatusCreated, status, "create review body: %v", body)

	// The product aggregate reflects the new review.
	status, body = doRequest(t, app, http.MethodGet, "/api/v1/products/"+productID, userToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4.0, body["average_rating"])
	assert.Equal(t, float64(1), body["review_count"])

	// One review per user per product.
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/reviews", userToken, fiber.Map{
		"product_id": productID, "rating": 5, "comment": "Again",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/favorites", userToken, fiber.Map{
		"user_id": userID, "product_id": productID,
	})
	assert.Equal(t, http.StatusCreated, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/favorites/user/"+userID, userToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodDelete,
		"/api/v1/favorites/user/"+userID+"/product/"+productID, userToken, nil)
	assert.Equal(t, http.StatusOK, status)
}
