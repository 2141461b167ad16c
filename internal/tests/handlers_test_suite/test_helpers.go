package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/shopspring/decimal"
	api "github.com/stockpile-io/stockpile/internal/http"
	handler "github.com/stockpile-io/stockpile/internal/http/handlers"
	"github.com/stockpile-io/stockpile/internal/http/rate_limiter"
	"github.com/stockpile-io/stockpile/internal/models"
	"github.com/stockpile-io/stockpile/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminToken     string
	associateToken string
	productRepo    *repo.InMemoryProductRepository
	movementRepo   *repo.InMemoryMovementRepository
)

func init() {
	setupTestRepos("secret123")
	r := api.NewRouter()

	var err error
	adminToken, err = generateToken(r, "admin@stockpile.test", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating admin token: %v", err))
	}
	associateToken, err = generateToken(r, "clerk@stockpile.test", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating associate token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.Create(models.User{
		Email:        "admin@stockpile.test",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	userRepo.Create(models.User{
		Email:        "clerk@stockpile.test",
		PasswordHash: string(hash),
		Role:         models.RoleAssociate,
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func generateToken(r http.Handler, email, password string) (string, error) {
	// The login route is rate limited per IP and httptest requests all share
	// one address; reset the buckets so repeated sign-ins don't trip it.
	rate_limiter.CleanupAllVisitors()

	payload := handler.CredentialsRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func sampleProduct(name, category, sku string, stock, minLevel, maxLevel int, costPrice string) handler.ProductRequest {
	return handler.ProductRequest{
		Name:          name,
		Category:      category,
		Brand:         "Acme",
		SKU:           sku,
		Supplier:      "Acme Supply Co",
		Location:      "A-1",
		CurrentStock:  stock,
		MinStockLevel: minLevel,
		MaxStockLevel: maxLevel,
		CostPrice:     decimal.RequireFromString(costPrice),
		SellingPrice:  decimal.RequireFromString(costPrice).Mul(decimal.NewFromInt(2)),
	}
}

func doJSON(r http.Handler, method, url, token string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, url, &body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", adminToken, p)
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("could not create product: status %d body %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding response: %v", err))
	}
	return resp
}

func restockProduct(r http.Handler, productID, token string, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/products/%s/restock", productID), token, handler.RestockRequest{Quantity: quantity})
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
