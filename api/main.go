package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockpile-io/stockpile/internal/alert"
	"github.com/stockpile-io/stockpile/internal/auth"
	"github.com/stockpile-io/stockpile/internal/config"
	"github.com/stockpile-io/stockpile/internal/db"
	api "github.com/stockpile-io/stockpile/internal/http"
	"github.com/stockpile-io/stockpile/internal/http/handlers"
	rl "github.com/stockpile-io/stockpile/internal/http/rate_limiter"
	"github.com/stockpile-io/stockpile/internal/models"
	"github.com/stockpile-io/stockpile/internal/redissvc"
	"github.com/stockpile-io/stockpile/internal/repo"
)

// @title Stockpile API
// @version 1.0
// @description REST API for inventory tracking: products, restocking and stock-health reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load config: %v", err)
	}

	auth.Configure(cfg.JWTSecret, cfg.AccessTokenTTL)
	auth.SetRefreshTokenTTL(cfg.RefreshTokenTTL)
	alert.SetSMTPConfig(cfg.SMTP)

	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go alert.StartDailySummary(24 * time.Hour)
	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("❌ Could not connect to Redis: %v", err)
		}
		defer rdb.Close()

		redisService := redissvc.NewRedisService(rdb, ctx)
		handlers.SetRedisService(redisService)
		alert.SetRedisService(redisService)
		auth.SetRedisService(redisService)
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()

		handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
		handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	} else {
		log.Println("⚠️ No database configured, using in-memory repositories")
		handlers.SetProductRepo(repo.NewInMemoryProductRepository())
		handlers.SetMovementRepo(repo.NewInMemoryMovementRepository())

		userRepo := repo.NewInMemoryUserRepository()
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Could not hash admin password: %v", err)
		}
		if _, err := userRepo.Create(models.User{
			Email:        cfg.AdminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}); err != nil {
			log.Fatalf("❌ Could not seed admin user: %v", err)
		}
		handlers.SetUserRepo(userRepo)
	}

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
