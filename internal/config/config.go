package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"GigZen"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"gigzen"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	// Tax holds the defaults used until settings are saved.
	Tax struct {
		SelfEmployedRate decimal.Decimal `envconfig:"SELF_EMPLOYED_RATE" default:"25"`
		WeeklyTarget     decimal.Decimal `envconfig:"WEEKLY_TARGET" default:"0"`
	}

	Calendar struct {
		Timezone string `envconfig:"TIMEZONE" default:"Australia/Sydney"`
	}

	Jobs struct {
		WeeklyResetEnabled  bool   `envconfig:"WEEKLY_RESET_ENABLED" default:"false"`
		WeeklyResetSchedule string `envconfig:"WEEKLY_RESET_SCHEDULE" default:"CRON_TZ=Australia/Sydney 0 0 * * MON"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
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
