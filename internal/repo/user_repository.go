package repo

import "github.com/stockpile-io/stockpile/internal/models"

type UserRepository interface {
	GetByEmail(email string) (models.User, error)
	Create(u models.User) (models.User, error)
}
