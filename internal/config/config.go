package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries every runtime setting. Values come from config.yaml when
// present, overridden by STOCKPILE_* environment variables.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Seed credentials for the in-memory mode; ignored when a database is
	// configured.
	AdminEmail    string
	AdminPassword string

	SMTP SMTP
}

type SMTP struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("STOCKPILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("jwt.secret", "dev-secret-change-me")
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("admin.email", "admin@stockpile.local")
	v.SetDefault("admin.password", "changeme")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		HTTPAddr:        v.GetString("http.addr"),
		DatabaseURL:     v.GetString("database.url"),
		RedisAddr:       v.GetString("redis.addr"),
		JWTSecret:       v.GetString("jwt.secret"),
		AccessTokenTTL:  v.GetDuration("jwt.access_ttl"),
		RefreshTokenTTL: v.GetDuration("jwt.refresh_ttl"),
		AdminEmail:      v.GetString("admin.email"),
		AdminPassword:   v.GetString("admin.password"),
		SMTP: SMTP{
			From:         v.GetString("smtp.from"),
			To:           v.GetString("smtp.to"),
			Server:       v.GetString("smtp.server"),
			Port:         v.GetString("smtp.port"),
			User:         v.GetString("smtp.user"),
			Password:     v.GetString("smtp.password"),
			AuthDisabled: v.GetBool("smtp.auth_disabled"),
		},
	}, nil
}
