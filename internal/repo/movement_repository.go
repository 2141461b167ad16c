package repo

import (
	"time"

	"github.com/stockpile-io/stockpile/internal/models"
)

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

type MovementRepository interface {
	Log(productID string, delta int) error
	GetByProductID(productID string, mf MovementFilter) ([]models.Movement, int, error)
}
