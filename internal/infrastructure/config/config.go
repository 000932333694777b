package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "change-this"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Password PasswordConfig
	Login    LoginConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET, default=change-this"`
	// Expiry values are whole minutes.
	ExpiresIn        int `env:"JWT_EXPIRES_IN,         default=15"`
	RefreshExpiresIn int `env:"JWT_REFRESH_EXPIRES_IN, default=10080"`
}

type PasswordConfig struct {
	BcryptCost int `env:"BCRYPT_COST, default=10"`
}

type LoginConfig struct {
	// MaxAttempts of 0 disables login throttling.
	MaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	LockoutWindow time.Duration `env:"LOGIN_LOCKOUT_WINDOW, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=food_ordering"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that must never reach production.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWT.Secret == DefaultJWTSecret {
		return errors.New("config: JWT_SECRET must be overridden in production")
	}
	if c.JWT.ExpiresIn < 0 || c.JWT.RefreshExpiresIn < 0 {
		return errors.New("config: token expiry must not be negative")
	}
	if c.Login.MaxAttempts < 0 {
		return errors.New("config: LOGIN_MAX_ATTEMPTS must not be negative")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.ExpiresIn) * time.Minute
}

func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshExpiresIn) * time.Minute
}
