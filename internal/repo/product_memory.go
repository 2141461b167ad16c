package repo

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stockpile-io/stockpile/internal/models"
	"github.com/stockpile-io/stockpile/internal/policy"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used in development mode and tests.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.Category != "" && p.Category != pf.Category {
		return false
	}
	if pf.Supplier != "" && p.Supplier != pf.Supplier {
		return false
	}
	if pf.Status != "" && string(policy.StatusOf(p)) != pf.Status {
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func paginate[T any](items []T, offset, limit *int) []T {
	if offset != nil && *offset > len(items) {
		return nil
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(items))
	}

	end := len(items)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(items))
	}

	return items[start:end]
}

func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Product
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}

	return paginate(filtered, pf.Offset, pf.Limit), len(filtered), nil
}

// Create adds a new product, assigning its id and both timestamps.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

// GetAll returns the current catalog snapshot.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]models.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetBySKU retrieves the first product carrying the given SKU. SKU
// uniqueness is expected but not enforced.
func (r *InMemoryProductRepository) GetBySKU(sku string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update merges the mutable fields of product over the stored record,
// preserving id and created_at and refreshing updated_at.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now()
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Restock increases current_stock by quantity in one step under the
// repository lock.
func (r *InMemoryProductRepository) Restock(id string, quantity int) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			p.CurrentStock += quantity
			p.UpdatedAt = time.Now()
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
