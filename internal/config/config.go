package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const devJWTSecret = "dev-secret-change-me"

// Config is the root configuration. Every field can come from the YAML file
// named by CONFIG_PATH or from the environment.
type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"development"`
	Debug bool   `yaml:"debug" env:"DEBUG" env-default:"false"`

	HTTP     HTTPServer `yaml:"http_server"`
	Database Database   `yaml:"database"`
	Auth     Auth       `yaml:"auth"`
	Uploads  Uploads    `yaml:"uploads"`
	Log      Log        `yaml:"log"`
}

type HTTPServer struct {
	Addr               string        `yaml:"address" env:"HTTP_ADDR"`
	Port               string        `yaml:"port" env:"PORT" env-default:"5000"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSOrigins        []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"*"`
	RequireProfileAuth bool          `yaml:"require_profile_auth" env:"REQUIRE_PROFILE_AUTH" env-default:"false"`
}

// ListenAddr prefers an explicit HTTP_ADDR and falls back to all interfaces on PORT.
func (h HTTPServer) ListenAddr() string {
	if h.Addr != "" {
		return h.Addr
	}
	return "0.0.0.0:" + h.Port
}

type Database struct {
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path" env:"DATABASE_PATH" env-default:"saira-acad.db"`

	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"password"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"saira_acad"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	TimeZone string `yaml:"timezone" env:"DB_TIMEZONE" env-default:"UTC"`
}

// DSN builds the postgres data source name.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

type Auth struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	UserTokenTTL    time.Duration `yaml:"user_token_ttl" env:"USER_TOKEN_TTL" env-default:"168h"`
	AdminTokenTTL   time.Duration `yaml:"admin_token_ttl" env:"ADMIN_TOKEN_TTL" env-default:"24h"`
	PartnerTokenTTL time.Duration `yaml:"partner_token_ttl" env:"PARTNER_TOKEN_TTL" env-default:"24h"`
	BcryptCost      int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`

	DefaultAdminUsername string `yaml:"default_admin_username" env:"DEFAULT_ADMIN_USERNAME" env-default:"admin"`
	DefaultAdminPassword string `yaml:"default_admin_password" env:"DEFAULT_ADMIN_PASSWORD" env-default:"1234567@_a"`
}

type Uploads struct {
	Dir   string `yaml:"dir" env:"UPLOAD_DIR" env-default:"uploads"`
	MaxMB int64  `yaml:"max_mb" env:"MAX_UPLOAD_MB" env-default:"5"`
}

// MaxBytes is the per-file upload limit.
func (u Uploads) MaxBytes() int64 { return u.MaxMB << 20 }

type Log struct {
	File  string `yaml:"file" env:"LOG_FILE"`
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Load reads .env (if present), then CONFIG_PATH or the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on env vars")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET must be set in production")
		}
		logrus.Warn("JWT_SECRET not set, using development secret")
		c.Auth.JWTSecret = devJWTSecret
	}

	if c.Uploads.MaxMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.Uploads.MaxMB)
	}
	return nil
}
