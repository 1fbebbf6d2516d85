package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// StoreDriver selects the user/product/audit backend: memory | mongo.
	StoreDriver string `env:"STORE_DRIVER, default=memory"`
	// CartDriver selects the cart backend: memory | redis.
	CartDriver string `env:"CART_DRIVER, default=memory"`

	// EmailCaseInsensitive folds email case for uniqueness and lookup.
	// Default is case-sensitive comparison.
	EmailCaseInsensitive bool `env:"EMAIL_CASE_INSENSITIVE, default=false"`

	// AdminEmail/AdminPassword seed a bootstrap admin account at startup
	// when both are set. Registration itself never grants admin.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminName     string `env:"ADMIN_NAME, default=Admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
