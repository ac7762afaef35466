package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"lapak/internal/handlers"
	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp stands up the whole HTTP surface against a per-test
// in-memory sqlite database, with no message broker.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Store{}, &models.Product{}, &models.Purchase{}); err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	purchaseRepo := repositories.NewGORMPurchaseRepository(db)

	authService := services.NewAuthService(userRepo, services.PlaintextVerifier{})
	userService := services.NewUserService(userRepo)
	storeService := services.NewStoreService(storeRepo)
	productService := services.NewProductService(productRepo, storeRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, productRepo, nil) // nil publisher: no broker in tests

	app := fiber.New()
	requireToken := middleware.TokenRequired(authService)
	handlers.NewAuthHandler(authService).RegisterRoutes(app, requireToken)
	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewStoreHandler(storeService).RegisterRoutes(app, requireToken)
	handlers.NewProductHandler(productService).RegisterRoutes(app, requireToken)
	handlers.NewPurchaseHandler(purchaseService).RegisterRoutes(app, requireToken)
	return app
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// signUp registers a user and returns the issued token.
func signUp(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/sign_up", "", map[string]string{
		"first_name": "Ana",
		"last_name":  "Putri",
		"email":      email,
		"password":   "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.NotEmpty(t, body["api_token"])
	return body["api_token"]
}

// createStore creates a store for the token's user and returns its id.
func createStore(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/stores", token, map[string]string{
		"name":        name,
		"description": "Integration test store",
		"address":     "Jl. Merdeka 1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var store models.Store
	decodeJSON(t, resp, &store)
	assert.NotEmpty(t, store.ID)
	return store.ID
}

// createProduct creates a product in the store and returns its id.
func createProduct(t *testing.T, app *fiber.App, token, storeID, name string, price float64) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/products", token, map[string]interface{}{
		"name":  name,
		"price": price,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decodeJSON(t, resp, &product)
	assert.NotEmpty(t, product.ID)
	return product.ID
}

func myPurchases(t *testing.T, app *fiber.App, token string) []models.Purchase {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/my_purchases", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var purchases []models.Purchase
	decodeJSON(t, resp, &purchases)
	return purchases
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestSignUpSignInSignOut(t *testing.T) {
	app := setupApp(t)

	firstToken := signUp(t, app, "ana@example.com")

	// Wrong password.
	resp := doJSON(t, app, http.MethodPost, "/sign_in", "", map[string]string{
		"email":    "ana@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Correct credentials rotate the token; the old one stops working.
	resp = doJSON(t, app, http.MethodPost, "/sign_in", "", map[string]string{
		"email":    "ana@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeJSON(t, resp, &body)
	secondToken := body["api_token"]
	assert.NotEmpty(t, secondToken)
	assert.NotEqual(t, firstToken, secondToken)

	resp = doJSON(t, app, http.MethodGet, "/my_purchases", firstToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Sign out, then the revoked token is rejected.
	resp = doJSON(t, app, http.MethodGet, "/sign_out", secondToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/my_purchases", secondToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProtectedRoutesWithoutToken(t *testing.T) {
	app := setupApp(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/stores"},
		{http.MethodPost, "/stores"},
		{http.MethodGet, "/stores/some-id/products"},
		{http.MethodPost, "/stores/some-id/products"},
		{http.MethodPost, "/stores/some-id/purchases"},
		{http.MethodGet, "/my_purchases"},
		{http.MethodGet, "/sign_out"},
	} {
		resp := doJSON(t, app, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
		resp.Body.Close()
	}
}

func TestPurchaseBatchFlow(t *testing.T) {
	app := setupApp(t)

	token := signUp(t, app, "ana@example.com")
	storeID := createStore(t, app, token, "Warung Ana")
	kopi := createProduct(t, app, token, storeID, "Kopi Gayo", 7.5)
	teh := createProduct(t, app, token, storeID, "Teh Melati", 3.25)

	// First checkout: one line item, group 1.
	resp := doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/purchases", token, map[string]interface{}{
		"products": []map[string]interface{}{
			{"product_id": kopi, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	purchases := myPurchases(t, app, token)
	assert.Len(t, purchases, 1)
	assert.Equal(t, 1, purchases[0].Group)
	assert.Equal(t, 2, purchases[0].Quantity)
	assert.Equal(t, kopi, purchases[0].ProductID)

	// Second checkout gets group 2; the first row keeps group 1.
	resp = doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/purchases", token, map[string]interface{}{
		"products": []map[string]interface{}{
			{"product_id": teh, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	purchases = myPurchases(t, app, token)
	assert.Len(t, purchases, 2)
	assert.Equal(t, 1, purchases[0].Group)
	assert.Equal(t, 2, purchases[1].Group)

	// Multi-item checkout shares one group number.
	resp = doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/purchases", token, map[string]interface{}{
		"products": []map[string]interface{}{
			{"product_id": kopi, "quantity": 1},
			{"product_id": teh, "quantity": 4},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	purchases = myPurchases(t, app, token)
	assert.Len(t, purchases, 4)
	assert.Equal(t, 3, purchases[2].Group)
	assert.Equal(t, 3, purchases[3].Group)
}

func TestPurchaseBatchValidation(t *testing.T) {
	app := setupApp(t)

	token := signUp(t, app, "ana@example.com")
	storeID := createStore(t, app, token, "Warung Ana")
	kopi := createProduct(t, app, token, storeID, "Kopi Gayo", 7.5)

	// Zero quantity is rejected with nothing written.
	resp := doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/purchases", token, map[string]interface{}{
		"products": []map[string]interface{}{
			{"product_id": kopi, "quantity": 0},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, myPurchases(t, app, token))

	// A phantom product id is rejected with nothing written.
	resp = doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/purchases", token, map[string]interface{}{
		"products": []map[string]interface{}{
			{"product_id": kopi, "quantity": 1},
			{"product_id": "no-such-product", "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, myPurchases(t, app, token))

	// An empty batch is a degenerate success.
	resp = doJSON(t, app, http.MethodPost, "/stores/"+storeID+"/purchases", token, map[string]interface{}{
		"products": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, myPurchases(t, app, token))
}

func TestStoreAndProductOwnership(t *testing.T) {
	app := setupApp(t)

	anaToken := signUp(t, app, "ana@example.com")
	budiToken := signUp(t, app, "budi@example.com")
	anaStore := createStore(t, app, anaToken, "Warung Ana")

	// Anyone signed in can browse a store's products.
	createProduct(t, app, anaToken, anaStore, "Kopi Gayo", 7.5)
	resp := doJSON(t, app, http.MethodGet, "/stores/"+anaStore+"/products", budiToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decodeJSON(t, resp, &products)
	assert.Len(t, products, 1)

	// Only the owner can stock a store.
	resp = doJSON(t, app, http.MethodPost, "/stores/"+anaStore+"/products", budiToken, map[string]interface{}{
		"name":  "Barang Budi",
		"price": 1.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Listing products of a missing store fails.
	resp = doJSON(t, app, http.MethodGet, "/stores/no-such-store/products", budiToken, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestUserListingHidesCredentials(t *testing.T) {
	app := setupApp(t)
	signUp(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var raw []map[string]interface{}
	decodeJSON(t, resp, &raw)
	assert.Len(t, raw, 1)
	assert.Equal(t, "ana@example.com", raw[0]["email"])
	assert.NotContains(t, raw[0], "password")
	assert.NotContains(t, raw[0], "api_token")
	assert.NotContains(t, raw[0], "Password")
	assert.NotContains(t, raw[0], "APIToken")
}

func TestSignUpValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/sign_up", "", map[string]string{
		"first_name": "Ana",
		"email":      "not-an-email",
		"password":   "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
