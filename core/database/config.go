package database

import "github.com/kelseyhightower/envconfig"

// Config holds lead archive connection settings shared across bots.
// The archive is optional; when Enabled is false the bots run without
// a database and leads are only delivered to the operator chat.
type Config struct {
	Enabled        bool   `envconfig:"ARCHIVE_ENABLED"`
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER"`
	Password       string `envconfig:"DB_PASSWORD"`
	Name           string `envconfig:"DB_NAME"`
	SSLMode        string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConnections int    `envconfig:"DB_MAX_CONNECTIONS" default:"4"`
}

// LoadFromEnv reads archive settings from the environment.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
