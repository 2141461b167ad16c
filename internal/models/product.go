package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry in the inventory system.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	SKU           string          `json:"sku"`
	Barcode       string          `json:"barcode,omitempty"`
	Supplier      string          `json:"supplier"`
	Location      string          `json:"location"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CreatedAt     time.Time       `json:"created_at,omitzero"`
	UpdatedAt     time.Time       `json:"updated_at,omitzero"`
}
