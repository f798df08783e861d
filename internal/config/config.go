package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"sebok"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"sebok"`
	}

	// SEB holds the parser settings. Brief stays a raw token here because
	// only the strict True/true/1 and False/false/0 spellings are accepted;
	// ParseBool turns it into a bool.
	SEB struct {
		Locale string `envconfig:"SEB_LOCALE" default:"sv_SE"`
		Brief  string `envconfig:"SEB_BRIEF" default:"false"`
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

// ParseBool parses a settings toggle from its recognized literal tokens.
// Anything outside the fixed token set is a configuration error, not a
// best-effort false.
func ParseBool(token string) (bool, error) {
	switch token {
	case "True", "true", "1":
		return true, nil
	case "False", "false", "0":
		return false, nil
	}

	return false, fmt.Errorf("can't parse boolean value: %q", token)
}
