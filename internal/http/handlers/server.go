package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stockpile-io/stockpile/internal/redissvc"
	repo "github.com/stockpile-io/stockpile/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	movementRepo repo.MovementRepository
	userRepo     repo.UserRepository

	rdb *redis.Client
	ctx context.Context
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}
