package repo

import "github.com/stockpile-io/stockpile/internal/models"

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	GetBySKU(sku string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Filter(pf ProductFilter) ([]models.Product, int, error)

	// Restock increases current_stock by quantity and refreshes updated_at
	// as a single store-side operation.
	Restock(id string, quantity int) (models.Product, error)
}
