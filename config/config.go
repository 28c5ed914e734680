package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port      string
	PublicDir string
	GinMode   string
	LogLevel  string

	DB      DBConfig
	Session SessionConfig
}

type DBConfig struct {
	Driver          string // "postgres" | "sqlite"
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	AutoMigrate     bool
}

type SessionConfig struct {
	Store         string // "memory" | "redis"
	TTL           time.Duration
	CookieName    string
	CookieSecure  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Prefix        string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("parse .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests don't touch the real environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:      env("PORT", "3000"),
		PublicDir: env("PUBLIC_DIR", "public"),
		GinMode:   env("GIN_MODE", "release"),
		LogLevel:  env("LOG_LEVEL", "info"),
	}

	p := parser{env: env}

	cfg.DB = DBConfig{
		Driver:          env("DB_DRIVER", "postgres"),
		DSN:             getenv("DB_DSN"),
		MaxOpenConns:    p.intVal("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    p.intVal("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: p.durationVal("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		QueryTimeout:    p.durationVal("DB_QUERY_TIMEOUT", 5*time.Second),
		AutoMigrate:     p.boolVal("DB_AUTO_MIGRATE", false),
	}
	switch cfg.DB.Driver {
	case "postgres":
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				env("DB_HOST", "localhost"),
				env("DB_USER", "postgres"),
				getenv("DB_PASSWORD"),
				env("DB_NAME", "fitness_tracker"),
				env("DB_PORT", "5432"),
				env("DB_SSLMODE", "disable"),
			)
		}
	case "sqlite":
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "fitness_tracker.db"
		}
	default:
		return nil, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DB.Driver)
	}

	cfg.Session = SessionConfig{
		Store:         env("SESSION_STORE", "memory"),
		TTL:           p.durationVal("SESSION_TTL", 24*time.Hour),
		CookieName:    env("SESSION_COOKIE_NAME", "fitness.sid"),
		CookieSecure:  p.boolVal("COOKIE_SECURE", false),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		RedisDB:       p.intVal("REDIS_DB", 0),
		Prefix:        env("SESSION_PREFIX", "fitness:sess:"),
	}
	if cfg.Session.Store != "memory" && cfg.Session.Store != "redis" {
		return nil, fmt.Errorf("SESSION_STORE: unsupported store %q", cfg.Session.Store)
	}
	if cfg.Session.TTL <= 0 {
		p.fail("SESSION_TTL", errors.New("must be positive"))
	}

	if p.err != nil {
		return nil, p.err
	}
	return cfg, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// parser keeps the first conversion error so FromEnv can report it once.
type parser struct {
	env func(key, fallback string) string
	err error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%s: %w", key, err)
	}
}

func (p *parser) intVal(key string, fallback int) int {
	raw := p.env(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}

func (p *parser) boolVal(key string, fallback bool) bool {
	raw := p.env(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}

func (p *parser) durationVal(key string, fallback time.Duration) time.Duration {
	raw := p.env(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}
