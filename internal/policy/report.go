package policy

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/stockpile-io/stockpile/internal/models"
)

// LowStockAlertLimit caps the low-stock list shown on the dashboard.
const LowStockAlertLimit = 5

type CategoryStat struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Value    decimal.Decimal `json:"value"`
}

type StockBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StockLevels struct {
	Good StockBucket `json:"good"`
	Low  StockBucket `json:"low"`
	Out  StockBucket `json:"out"`
}

// Report is the aggregate view of one catalog snapshot.
type Report struct {
	TotalProducts       int              `json:"total_products"`
	TotalInventoryValue decimal.Decimal  `json:"total_inventory_value"`
	LowStockCount       int              `json:"low_stock_count"`
	OutOfStockCount     int              `json:"out_of_stock_count"`
	CategoryBreakdown   []CategoryStat   `json:"category_breakdown"`
	StockLevels         StockLevels      `json:"stock_levels"`
	LowStockAlerts      []models.Product `json:"low_stock_alerts"`
}

// Value is the monetary worth of a product's on-hand stock.
func Value(p models.Product) decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// Summarize aggregates a catalog snapshot into a Report. Snapshot order is
// preserved where it matters: category ties keep first-encountered order and
// the low-stock alert list keeps catalog order.
func Summarize(catalog []models.Product) Report {
	r := Report{
		TotalProducts:       len(catalog),
		TotalInventoryValue: decimal.Zero,
	}

	byCategory := map[string]int{} // category -> index into CategoryBreakdown
	for _, p := range catalog {
		r.TotalInventoryValue = r.TotalInventoryValue.Add(Value(p))

		i, ok := byCategory[p.Category]
		if !ok {
			i = len(r.CategoryBreakdown)
			byCategory[p.Category] = i
			r.CategoryBreakdown = append(r.CategoryBreakdown, CategoryStat{
				Category: p.Category,
				Value:    decimal.Zero,
			})
		}
		r.CategoryBreakdown[i].Count++
		r.CategoryBreakdown[i].Value = r.CategoryBreakdown[i].Value.Add(Value(p))

		switch StatusOf(p) {
		case StatusOut:
			r.OutOfStockCount++
			r.StockLevels.Out.Count++
		case StatusLow:
			r.LowStockCount++
			r.StockLevels.Low.Count++
			if len(r.LowStockAlerts) < LowStockAlertLimit {
				r.LowStockAlerts = append(r.LowStockAlerts, p)
			}
		default:
			r.StockLevels.Good.Count++
		}
	}

	sort.SliceStable(r.CategoryBreakdown, func(i, j int) bool {
		return r.CategoryBreakdown[i].Count > r.CategoryBreakdown[j].Count
	})

	if r.TotalProducts > 0 {
		total := float64(r.TotalProducts)
		r.StockLevels.Good.Percentage = 100 * float64(r.StockLevels.Good.Count) / total
		r.StockLevels.Low.Percentage = 100 * float64(r.StockLevels.Low.Count) / total
		r.StockLevels.Out.Percentage = 100 * float64(r.StockLevels.Out.Count) / total
	}

	return r
}
