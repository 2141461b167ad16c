package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	api "github.com/stockpile-io/stockpile/internal/http"
	"github.com/stockpile-io/stockpile/internal/policy"
)

func seedReportCatalog(r http.Handler) {
	mustCreateProduct(r, sampleProduct("Laptop", "Electronics", "LAP-001", 25, 10, 50, "12.50"))
	mustCreateProduct(r, sampleProduct("Mouse", "Electronics", "MOU-001", 5, 15, 40, "8.00"))
	mustCreateProduct(r, sampleProduct("Stapler", "Office", "STA-001", 0, 20, 100, "3.50"))
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	seedReportCatalog(r)

	w := doJSON(r, http.MethodGet, "/metrics/dashboard", associateToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var report policy.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if report.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", report.TotalProducts)
	}
	if want := decimal.RequireFromString("352.50"); !report.TotalInventoryValue.Equal(want) {
		t.Errorf("expected total value %s, got %s", want, report.TotalInventoryValue)
	}
	if report.LowStockCount != 1 || report.OutOfStockCount != 1 {
		t.Errorf("unexpected counts: low=%d out=%d", report.LowStockCount, report.OutOfStockCount)
	}
	if len(report.LowStockAlerts) != 1 {
		t.Errorf("expected 1 low-stock alert, got %d", len(report.LowStockAlerts))
	}
}

func TestGetReportHandler_CategoryBreakdown(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	seedReportCatalog(r)

	w := doJSON(r, http.MethodGet, "/reports", associateToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var report policy.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(report.CategoryBreakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report.CategoryBreakdown))
	}
	if report.CategoryBreakdown[0].Category != "Electronics" || report.CategoryBreakdown[0].Count != 2 {
		t.Errorf("expected Electronics first with count 2, got %+v", report.CategoryBreakdown[0])
	}
}

func TestExportReportHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	seedReportCatalog(r)

	w := doJSON(r, http.MethodGet, "/reports/export", associateToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "stockpile-report-") || !strings.Contains(disposition, ".csv") {
		t.Errorf("unexpected Content-Disposition %q", disposition)
	}

	body := w.Body.String()
	for _, want := range []string{
		"\"Category Breakdown\"",
		"\"Stock Level Distribution\"",
		"\"Electronics\",2,352.50",
		"\"Out of Stock\",1,33.3",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("export missing %q:\n%s", want, body)
		}
	}
}
