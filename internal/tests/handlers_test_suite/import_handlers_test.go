package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/stockpile-io/stockpile/internal/http"
	handler "github.com/stockpile-io/stockpile/internal/http/handlers"
)

const importCSV = `name,category,sku,current_stock,min_stock_level,max_stock_level,cost_price,selling_price
Laptop,Electronics,LAP-001,25,10,50,12.50,19.99
Mouse,Electronics,MOU-001,5,15,40,8.00,14.99
`

func doImport(r http.Handler, url, token, csvContent string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeImportResult(t *testing.T, w *httptest.ResponseRecorder) handler.ImportProductsResult {
	t.Helper()
	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return result
}

func TestImportProductsHandler_CreatesNewProducts(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := doImport(r, "/products/import", adminToken, importCSV)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	result := decodeImportResult(t, w)
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", result.Errors)
	}

	if _, err := productRepo.GetBySKU("MOU-001"); err != nil {
		t.Errorf("expected MOU-001 to exist after import: %v", err)
	}
}

func TestImportProductsHandler_SkipMode(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	existing := mustCreateProduct(r, sampleProduct("Old Laptop", "Electronics", "LAP-001", 3, 10, 50, "10.00"))

	w := doImport(r, "/products/import", adminToken, importCSV)
	result := decodeImportResult(t, w)

	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0].Description, "LAP-001") {
		t.Errorf("expected duplicate SKU error for LAP-001, got %+v", result.Errors)
	}

	kept, err := productRepo.GetByID(existing.ID)
	if err != nil {
		t.Fatalf("error fetching product: %v", err)
	}
	if kept.Name != "Old Laptop" || kept.CurrentStock != 3 {
		t.Errorf("skip mode must not touch existing product, got %+v", kept)
	}
}

func TestImportProductsHandler_UpdateMode(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	existing := mustCreateProduct(r, sampleProduct("Old Laptop", "Electronics", "LAP-001", 3, 10, 50, "10.00"))

	w := doImport(r, "/products/import?mode=update", adminToken, importCSV)
	result := decodeImportResult(t, w)

	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", result.Errors)
	}

	updated, err := productRepo.GetByID(existing.ID)
	if err != nil {
		t.Fatalf("error fetching product: %v", err)
	}
	if updated.Name != "Laptop" || updated.CurrentStock != 25 {
		t.Errorf("update mode should overwrite product, got %+v", updated)
	}
}

func TestImportProductsHandler_RowValidation(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	csv := `name,category,sku,current_stock,cost_price
Laptop,Electronics,LAP-001,25,12.50
,Electronics,MOU-001,5,8.00
Stapler,Office,,0,3.50
`
	w := doImport(r, "/products/import", adminToken, csv)
	result := decodeImportResult(t, w)

	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %+v", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Description, "row 3") || !strings.Contains(result.Errors[0].Description, "name") {
		t.Errorf("unexpected first error: %+v", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1].Description, "row 4") || !strings.Contains(result.Errors[1].Description, "sku") {
		t.Errorf("unexpected second error: %+v", result.Errors[1])
	}
}

func TestImportProductsHandler_MissingFile(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/products/import", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestImportProductsHandler_AdminOnly(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := doImport(r, "/products/import", associateToken, importCSV)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	if products, _ := productRepo.GetAll(); len(products) != 0 {
		t.Errorf("expected no products imported, got %d", len(products))
	}
}
