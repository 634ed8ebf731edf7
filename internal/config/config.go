package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once at startup and passed by value to every component that needs it.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"dev"`
	HTTPPort int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Database DatabaseConfig
	Session  SessionConfig
	CORS     CORSConfig
	Cache    CacheConfig
	Mail     MailConfig
	Tenant   TenantConfig
	Seed     SeedConfig

	UploadDir          string        `env:"UPLOAD_DIR" envDefault:"./uploads"`
	SoftDeleteEntities []string      `env:"SOFT_DELETE_ENTITIES" envSeparator:"," envDefault:"users,vehicles"`
	AuditBuffer        int           `env:"AUDIT_BUFFER" envDefault:"256"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"` // postgres, sqlite
	DSN        string `env:"DB_DSN"`
	TicketsDSN string `env:"TICKETS_DB_DSN"` // empty = tickets live in the main database
}

type SessionConfig struct {
	CookieName   string        `env:"SESSION_COOKIE" envDefault:"sessionToken"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SecureCookie bool          `env:"SESSION_SECURE_COOKIE" envDefault:"true"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
}

type CacheConfig struct {
	PermissionTTL time.Duration `env:"PERMISSION_CACHE_TTL" envDefault:"1m"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
}

type MailConfig struct {
	Host      string `env:"SMTP_HOST"`
	Port      int    `env:"SMTP_PORT" envDefault:"587"`
	Username  string `env:"SMTP_USER"`
	Password  string `env:"SMTP_PASSWORD"`
	From      string `env:"SMTP_FROM"`
	ContactTo string `env:"CONTACT_EMAIL"`
}

// TenantConfig carries the branding shown by the front-end before login.
type TenantConfig struct {
	Name         string `env:"TENANT_NAME" envDefault:"Auto Service"`
	LogoURL      string `env:"TENANT_LOGO_URL"`
	PrimaryColor string `env:"TENANT_PRIMARY_COLOR" envDefault:"#1f6feb"`
	Phone        string `env:"TENANT_PHONE"`
	Email        string `env:"TENANT_EMAIL"`
	Address      string `env:"TENANT_ADDRESS"`
}

type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

// Load reads an optional .env file and then the process environment.
func Load(envPath string) (Config, error) {
	var c Config

	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("DB_DSN is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with production defaults.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}
