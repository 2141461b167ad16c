package handlers

import (
	"github.com/shopspring/decimal"
	"github.com/stockpile-io/stockpile/internal/models"
	"github.com/stockpile-io/stockpile/internal/policy"
)

type ProductRequest struct {
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
}

type ProductResponse struct {
	models.Product
	Status         policy.Status   `json:"status"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Product:        p,
		Status:         policy.StatusOf(p),
		InventoryValue: policy.Value(p),
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type RestockRequest struct {
	Quantity int `json:"quantity"`
}

type RestockSuggestion struct {
	Product           ProductResponse `json:"product"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	Urgency           policy.Urgency  `json:"urgency"`
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
