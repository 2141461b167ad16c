package repo

import (
	"sync"
	"time"

	"github.com/stockpile-io/stockpile/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.Mutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log appends a stock movement for a product.
func (r *InMemoryMovementRepository) Log(productID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = append(r.movements, models.Movement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: time.Now(),
	})
	return nil
}

// GetByProductID returns all movements for a product, optionally filtered by
// date range and paginated.
func (r *InMemoryMovementRepository) GetByProductID(productID string, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Movement
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) ||
			(mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}

	return paginate(filtered, mf.Offset, mf.Limit), len(filtered), nil
}
