package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stockpile-io/stockpile/internal/redissvc"
)

// Refresh tokens live in Redis when a client is configured; otherwise in a
// process-local map (development and tests).

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

var (
	mu         sync.Mutex
	localStore = map[string]refreshEntry{}
	refreshTTL = 7 * 24 * time.Hour

	rdb *redis.Client
	ctx context.Context
)

type refreshEntry struct {
	email     string
	expiresAt time.Time
}

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func SetRefreshTokenTTL(ttl time.Duration) {
	if ttl > 0 {
		refreshTTL = ttl
	}
}

func refreshKey(token string) string {
	return "auth:refresh:" + token
}

// NewRefreshToken issues a refresh token for the given account.
func NewRefreshToken(email string) (string, error) {
	token := uuid.NewString()

	if rdb != nil {
		if err := rdb.Set(ctx, refreshKey(token), email, refreshTTL).Err(); err != nil {
			return "", err
		}
		return token, nil
	}

	mu.Lock()
	localStore[token] = refreshEntry{email: email, expiresAt: time.Now().Add(refreshTTL)}
	mu.Unlock()
	return token, nil
}

// ResolveRefreshToken returns the account email a refresh token belongs to.
func ResolveRefreshToken(token string) (string, error) {
	if rdb != nil {
		email, err := rdb.Get(ctx, refreshKey(token)).Result()
		if errors.Is(err, redis.Nil) {
			return "", ErrRefreshTokenNotFound
		}
		return email, err
	}

	mu.Lock()
	defer mu.Unlock()
	entry, ok := localStore[token]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(localStore, token)
		return "", ErrRefreshTokenNotFound
	}
	return entry.email, nil
}

// RevokeRefreshToken invalidates a refresh token (sign-out).
func RevokeRefreshToken(token string) error {
	if rdb != nil {
		return rdb.Del(ctx, refreshKey(token)).Err()
	}

	mu.Lock()
	delete(localStore, token)
	mu.Unlock()
	return nil
}

// StartRefreshTokenCleaner drops expired local tokens periodically. Redis
// expires its own keys.
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		now := time.Now()
		for token, entry := range localStore {
			if now.After(entry.expiresAt) {
				delete(localStore, token)
			}
		}
		mu.Unlock()
	}
}
