package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration read from environment variables.
type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	GinMode    string `envconfig:"GIN_MODE" default:"debug"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"3306"`
	DBUsername string `envconfig:"DB_USERNAME" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBDatabase string `envconfig:"DB_DATABASE" required:"true"`

	// JWTSecret falls back to a development value when unset. Deployments
	// must set JWT_SECRET; the fallback exists only so a fresh checkout
	// starts without a .env.
	JWTSecret string `envconfig:"JWT_SECRET"`

	SMTPHost      string `envconfig:"SMTP_HOST"`
	SMTPPort      int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser      string `envconfig:"SMTP_USER"`
	SMTPPass      string `envconfig:"SMTP_PASS"`
	SMTPFrom      string `envconfig:"SMTP_FROM"` // e.g. "Revista <no-reply@revista.org>"
	SkipTLSVerify bool   `envconfig:"SMTP_SKIP_TLS_VERIFY" default:"false"`

	// EditorialEmail receives submission and reviewer-application
	// notifications.
	EditorialEmail string `envconfig:"EDITORIAL_EMAIL"`

	S3Key    string `envconfig:"S3_KEY"`
	S3Secret string `envconfig:"S3_SECRET"`
	S3URL    string `envconfig:"S3_URL"`
	S3Region string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Bucket string `envconfig:"S3_BUCKET"`

	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	DebugSQL    bool   `envconfig:"DEBUG_SQL" default:"false"`
}

// DSN returns the MySQL data source name.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUsername,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBDatabase,
	)
}

const devJWTSecret = "a1b2c3d4e5f6g7h8i9j0k1l2m3n4o5p6"

// SigningSecret returns the JWT secret, defaulting to the development
// fallback when JWT_SECRET is not configured.
func (c *Config) SigningSecret() []byte {
	if c.JWTSecret == "" {
		return []byte(devJWTSecret)
	}
	return []byte(c.JWTSecret)
}

// App is the process-wide configuration, populated by Load.
var App = &Config{}

// Load reads .env (if present) and processes environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	App = &c
	return &c, nil
}
