package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed to the components that need
// it; business logic never reads the environment directly.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret must be set when Env is production; development falls
	// back to a fixed dev-only secret.
	JWTSecret string `env:"JWT_SECRET"`

	// StaticDir holds the HTML/JS pages served on public routes.
	StaticDir string `env:"STATIC_DIR, default=web"`

	// SeedProducts inserts the demo catalog into an empty database.
	SeedProducts bool `env:"SEED_PRODUCTS, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=store"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// devJWTSecret keeps local development zero-config. Production refuses to
// start without an explicit secret.
const devJWTSecret = "dev-only-insecure-secret"

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// load resolves configuration through the given lookuper; tests supply an
// envconfig.MapLookuper so they never depend on the host environment.
func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("config: JWT_SECRET is required when ENV=production")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("config: MONGO_URI must not be empty")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
