// Package policy computes stock-health classifications, restock suggestions
// and aggregate reports over catalog snapshots. Everything here is a pure
// function: the catalog is read by the caller and passed in, nothing is
// mutated or cached.
package policy

import "github.com/stockpile-io/stockpile/internal/models"

// Status is the stock-health classification of a single product.
type Status string

const (
	StatusOut  Status = "out_of_stock"
	StatusLow  Status = "low_stock"
	StatusGood Status = "in_stock"
)

// Urgency qualifies how badly a product needs restocking.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
)

// StatusOf classifies a product. Exactly one status applies; an empty shelf
// wins over a low threshold.
func StatusOf(p models.Product) Status {
	switch {
	case p.CurrentStock == 0:
		return StatusOut
	case p.CurrentStock <= p.MinStockLevel:
		return StatusLow
	default:
		return StatusGood
	}
}

// NeedsRestock reports whether a product is out of stock or below its
// minimum level.
func NeedsRestock(p models.Product) bool {
	return StatusOf(p) != StatusGood
}

// UrgencyOf labels a product already known to need restocking. It is not a
// gating condition, only a presentation aid.
func UrgencyOf(p models.Product) Urgency {
	switch {
	case p.CurrentStock == 0:
		return UrgencyCritical
	case p.CurrentStock*2 <= p.MinStockLevel:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}
