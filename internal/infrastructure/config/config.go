package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config aggregates all runtime settings. Every component receives the
// values it needs through its constructor; nothing reads the environment at
// call sites.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret must be set before startup; an empty secret is a fatal
	// startup error, never a per-request one.
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	// Bootstrap admin credentials used by the one-time seeding check.
	AdminUserName string `env:"ADMIN_USER_NAME, default=admin"`
	AdminEmail    string `env:"ADMIN_EMAIL,     default=admin@taskmanager.local"`
	AdminPassword string `env:"ADMIN_PASSWORD,  default=changeme"`

	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL, default=30s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=task_manager"`
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
