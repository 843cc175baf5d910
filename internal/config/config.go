package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"IPD Ledger"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"ipdledger"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	}

	Billing struct {
		// AllowPostDischargePayments lets the billing desk record payments
		// against an admission that has already been discharged.
		AllowPostDischargePayments bool   `envconfig:"BILLING_ALLOW_POST_DISCHARGE_PAYMENTS" default:"false"`
		CatalogPath                string `envconfig:"CATALOG_PATH"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
