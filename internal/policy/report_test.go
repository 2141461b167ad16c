package policy

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockpile-io/stockpile/internal/models"
)

func withCategory(p models.Product, category string) models.Product {
	p.Category = category
	return p
}

func TestSummarize_Scenario(t *testing.T) {
	catalog := []models.Product{
		product(25, 10, 50, "12.50"),
		product(5, 15, 40, "8.00"),
		product(0, 20, 100, "3.50"),
	}

	r := Summarize(catalog)

	if r.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", r.TotalProducts)
	}
	if want := decimal.RequireFromString("352.50"); !r.TotalInventoryValue.Equal(want) {
		t.Errorf("expected total value %s, got %s", want, r.TotalInventoryValue)
	}
	if r.LowStockCount != 1 {
		t.Errorf("expected 1 low-stock product, got %d", r.LowStockCount)
	}
	if r.OutOfStockCount != 1 {
		t.Errorf("expected 1 out-of-stock product, got %d", r.OutOfStockCount)
	}
	if r.StockLevels.Good.Count != 1 || r.StockLevels.Low.Count != 1 || r.StockLevels.Out.Count != 1 {
		t.Errorf("unexpected bucket counts: %+v", r.StockLevels)
	}
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	r := Summarize(nil)

	if r.TotalProducts != 0 {
		t.Errorf("expected 0 products, got %d", r.TotalProducts)
	}
	if !r.TotalInventoryValue.IsZero() {
		t.Errorf("expected zero value, got %s", r.TotalInventoryValue)
	}
	for name, b := range map[string]StockBucket{"good": r.StockLevels.Good, "low": r.StockLevels.Low, "out": r.StockLevels.Out} {
		if b.Percentage != 0 {
			t.Errorf("bucket %s: expected 0%% on empty catalog, got %v", name, b.Percentage)
		}
	}
}

func TestSummarize_BucketAndCategorySums(t *testing.T) {
	var catalog []models.Product
	for i := range 37 {
		p := product(i%7, 3, 20, "2.25")
		catalog = append(catalog, withCategory(p, fmt.Sprintf("cat-%d", i%4)))
	}

	r := Summarize(catalog)

	bucketSum := r.StockLevels.Good.Count + r.StockLevels.Low.Count + r.StockLevels.Out.Count
	if bucketSum != r.TotalProducts {
		t.Errorf("bucket counts sum to %d, want %d", bucketSum, r.TotalProducts)
	}

	categorySum := 0
	for _, c := range r.CategoryBreakdown {
		categorySum += c.Count
	}
	if categorySum != r.TotalProducts {
		t.Errorf("category counts sum to %d, want %d", categorySum, r.TotalProducts)
	}

	pctSum := r.StockLevels.Good.Percentage + r.StockLevels.Low.Percentage + r.StockLevels.Out.Percentage
	if math.Abs(pctSum-100) > 0.01 {
		t.Errorf("percentages sum to %v, want 100", pctSum)
	}
}

func TestSummarize_CategoryOrdering(t *testing.T) {
	catalog := []models.Product{
		withCategory(product(1, 0, 5, "1.00"), "Tools"),
		withCategory(product(1, 0, 5, "1.00"), "Paint"),
		withCategory(product(1, 0, 5, "1.00"), "Paint"),
		withCategory(product(1, 0, 5, "1.00"), "Lumber"),
		withCategory(product(1, 0, 5, "1.00"), "lumber"), // case-sensitive grouping
	}

	r := Summarize(catalog)

	if len(r.CategoryBreakdown) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(r.CategoryBreakdown))
	}
	if r.CategoryBreakdown[0].Category != "Paint" || r.CategoryBreakdown[0].Count != 2 {
		t.Errorf("expected Paint first with count 2, got %+v", r.CategoryBreakdown[0])
	}
	// Ties keep first-encountered order.
	rest := []string{r.CategoryBreakdown[1].Category, r.CategoryBreakdown[2].Category, r.CategoryBreakdown[3].Category}
	want := []string{"Tools", "Lumber", "lumber"}
	for i := range want {
		if rest[i] != want[i] {
			t.Errorf("tie order: expected %v, got %v", want, rest)
			break
		}
	}
}

func TestSummarize_LowStockAlertsCapped(t *testing.T) {
	var catalog []models.Product
	for i := range 12 {
		p := product(2, 10, 50, "1.00")
		p.Name = fmt.Sprintf("item-%d", i)
		catalog = append(catalog, p)
	}

	r := Summarize(catalog)

	if len(r.LowStockAlerts) != LowStockAlertLimit {
		t.Fatalf("expected %d alerts, got %d", LowStockAlertLimit, len(r.LowStockAlerts))
	}
	// Catalog order is preserved, not sorted.
	for i, p := range r.LowStockAlerts {
		if want := fmt.Sprintf("item-%d", i); p.Name != want {
			t.Errorf("alert %d: expected %s, got %s", i, want, p.Name)
		}
	}
}

func TestSummarize_ExactToTheCent(t *testing.T) {
	// 10,000 line items priced to defeat binary floating point.
	var catalog []models.Product
	for range 10000 {
		catalog = append(catalog, product(1, 0, 5, "0.10"))
	}

	r := Summarize(catalog)

	if want := decimal.RequireFromString("1000.00"); !r.TotalInventoryValue.Equal(want) {
		t.Errorf("expected exactly %s, got %s", want, r.TotalInventoryValue)
	}
}

func TestValue(t *testing.T) {
	p := product(25, 10, 50, "12.50")
	if want := decimal.RequireFromString("312.50"); !Value(p).Equal(want) {
		t.Errorf("expected %s, got %s", want, Value(p))
	}
}
