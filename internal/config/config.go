package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Storage   Storage
	Birthdays Birthdays
	Log       Log
}

// Storage selects where the address book is persisted.
type Storage struct {
	Driver string `env:"ADDRESSBOOK_STORAGE" envDefault:"file" validate:"oneof=file sqlite memory"`
	Path   string `env:"ADDRESSBOOK_PATH" envDefault:"addressbook.yaml" validate:"required_unless=Driver memory"`
}

// Birthdays configures the upcoming-birthdays query.
type Birthdays struct {
	Days int `env:"ADDRESSBOOK_BIRTHDAY_DAYS" envDefault:"7" validate:"min=1"`
}

// Log configures the application logger.
type Log struct {
	Level  string `env:"ADDRESSBOOK_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	Output string `env:"ADDRESSBOOK_LOG_OUTPUT" envDefault:"stderr" validate:"required"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks every field against its rules.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
