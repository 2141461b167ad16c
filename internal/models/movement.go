package models

import "time"

// Movement is one stock change applied to a product, kept as an audit trail.
type Movement struct {
	ID        int       `json:"id"`
	ProductID string    `json:"product_id"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}
