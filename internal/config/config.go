package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Pacing delays used between console renders so the game reads naturally.
// Tests run the engine with zero delays instead.
const (
	ShuffleDelay = 500 * time.Millisecond
	DealDelay    = time.Second
	ShortDelay   = 500 * time.Millisecond
	LongDelay    = 2 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Table rules
	NumDecks       int   // Number of 52-card decks in the shoe
	StandThreshold int   // Dealer stands at or above this score
	MaxHands       int   // Maximum player hands per round
	MinimumBuy     int64 // Default bet per hand
	BuyIncrement   int64 // Bets must be multiples of this amount

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	numDecks, err := getIntEnv("NUM_DECKS", 6)
	if err != nil {
		return nil, err
	}
	standThreshold, err := getIntEnv("DEALER_STAND_THRESHOLD", 17)
	if err != nil {
		return nil, err
	}
	maxHands, err := getIntEnv("MAX_HANDS", 5)
	if err != nil {
		return nil, err
	}
	minimumBuy, err := getInt64Env("MINIMUM_BUY", 50)
	if err != nil {
		return nil, err
	}
	buyIncrement, err := getInt64Env("BUY_INCREMENT", 50)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NumDecks:       numDecks,
		StandThreshold: standThreshold,
		MaxHands:       maxHands,
		MinimumBuy:     minimumBuy,
		BuyIncrement:   buyIncrement,
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration describes a playable table
func (c *Config) Validate() error {
	if c.NumDecks < 1 {
		return fmt.Errorf("NUM_DECKS must be at least 1, got %d", c.NumDecks)
	}
	if c.StandThreshold < 1 || c.StandThreshold > 21 {
		return fmt.Errorf("DEALER_STAND_THRESHOLD must be between 1 and 21, got %d", c.StandThreshold)
	}
	if c.MaxHands < 1 {
		return fmt.Errorf("MAX_HANDS must be at least 1, got %d", c.MaxHands)
	}
	if c.MinimumBuy <= 0 {
		return fmt.Errorf("MINIMUM_BUY must be positive, got %d", c.MinimumBuy)
	}
	if c.BuyIncrement <= 0 {
		return fmt.Errorf("BUY_INCREMENT must be positive, got %d", c.BuyIncrement)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv returns an integer environment variable or default if not set
func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return parsed, nil
}

// getInt64Env returns an int64 environment variable or default if not set
func getInt64Env(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return parsed, nil
}
