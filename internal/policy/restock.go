package policy

import "github.com/stockpile-io/stockpile/internal/models"

// MinimumOrderQuantity is the floor applied to every restock suggestion.
// It only ever raises a suggestion, never lowers one.
const MinimumOrderQuantity = 10

func rawDeficit(p models.Product) int {
	a := p.MaxStockLevel - p.CurrentStock
	b := p.MinStockLevel - p.CurrentStock
	return max(a, b)
}

// SuggestedQuantity returns the restock quantity to propose for a product.
// It is total over any product; callers normally pre-filter with NeedsRestock.
func SuggestedQuantity(p models.Product) int {
	return max(rawDeficit(p), MinimumOrderQuantity)
}

// InitialRestockQuantity seeds the operator-editable quantity field: the raw
// deficit when positive, otherwise the minimum order quantity.
func InitialRestockQuantity(p models.Product) int {
	if raw := rawDeficit(p); raw > 0 {
		return raw
	}
	return MinimumOrderQuantity
}

// DecrementQuantity steps an operator-chosen quantity down, saturating at
// zero.
func DecrementQuantity(qty int) int {
	return max(qty-1, 0)
}
