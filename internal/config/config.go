package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	Address       string `env:"RUN_ADDRESS" envDefault:":8080"`
	DatabaseURI   string `env:"DATABASE_URI"`
	SessionSecret string `env:"SESSION_SECRET"`

	OrderUser       string `env:"ORDER_USER" envDefault:"order_mgr"`
	OrderPassword   string `env:"ORDER_PASSWORD" envDefault:"order123"`
	InspectUser     string `env:"INSPECT_USER" envDefault:"inspect_mgr"`
	InspectPassword string `env:"INSPECT_PASSWORD" envDefault:"inspect123"`
}

func NewConfig() (Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	config := Config{}

	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}

	config.parseFlags()

	if err := config.validateConfig(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) parseFlags() {
	flag.StringVar(&c.Address, "a", c.Address, "Service address")
	flag.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "Database URI")
	flag.StringVar(&c.SessionSecret, "s", c.SessionSecret, "Session signing secret")

	flag.Parse()
}

func (c *Config) validateConfig() error {
	if c.DatabaseURI == "" {
		return fmt.Errorf("database URI is required")
	}

	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}

	return nil
}
