package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	Auth     AuthConfig
	RabbitMQ RabbitMQConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
	Seed     SeedConfig
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Port string
	Env  string // development, production
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// DatabaseConfig selects and configures the GORM driver.
type DatabaseConfig struct {
	Driver   string // sqlite, postgres
	DSN      string
	LogLevel string // silent, error, warn, info
}

// AuthConfig holds token and admin settings.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// RabbitMQConfig holds the broker URL. Empty disables order events.
type RabbitMQConfig struct {
	URL string
}

// RedisConfig configures the product cache. Empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	CORSAllowOrigins string
	BodyLimit        int
}

// SeedConfig controls seeding of the demo catalog.
type SeedConfig struct {
	Catalog bool
}

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing order of priority. Environment keys are the
// upper-cased option names with "." replaced by "_", e.g. DATABASE_DSN.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Port: v.GetString("app.port"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("database.driver")),
			DSN:      v.GetString("database.dsn"),
			LogLevel: v.GetString("database.log_level"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("jwt.secret"),
			TokenTTL:      v.GetDuration("jwt.ttl"),
			AdminEmail:    v.GetString("admin.email"),
			AdminPassword: v.GetString("admin.password"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: v.GetString("rabbitmq.url"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		HTTP: HTTPConfig{
			CORSAllowOrigins: v.GetString("cors.allow_origins"),
			BodyLimit:        v.GetInt("http.body_limit"),
		},
		Seed: SeedConfig{
			Catalog: v.GetBool("seed.catalog"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "cakeshop.db")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("admin.email", "admin@gmail.com")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("cors.allow_origins", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("http.body_limit", 1<<20)
	v.SetDefault("seed.catalog", true)
}

// Validate checks the settings that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q (want sqlite or postgres)", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("jwt ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Auth.AdminEmail == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("admin email and password are required")
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
