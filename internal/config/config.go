// Package config loads and saves the game settings from .rush/config.json.
// Missing fields fall back to the defaults so older config files keep
// working.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat game configuration.
type Config struct {
	Version string `json:"version"`

	TableCount int `json:"table_count,omitempty"`

	GroceryMs     int64 `json:"grocery_ms,omitempty"`
	KitchenPrepMs int64 `json:"kitchen_prep_ms,omitempty"`
	ServiceMs     int64 `json:"service_ms,omitempty"`

	CustomerPatienceMs int64 `json:"customer_patience_ms,omitempty"`
	StartingCoins      int64 `json:"starting_coins,omitempty"`

	CuttingBoardSlots int `json:"cutting_board_slots,omitempty"`
	StoveSlots        int `json:"stove_slots,omitempty"`
	OvenSlots         int `json:"oven_slots,omitempty"`
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() *Config {
	return &Config{
		Version:            "1",
		TableCount:         4,
		GroceryMs:          60_000,
		KitchenPrepMs:      30_000,
		ServiceMs:          180_000,
		CustomerPatienceMs: 45_000,
		StartingCoins:      50,
		CuttingBoardSlots:  1,
		StoveSlots:         3,
		OvenSlots:          2,
	}
}

// LoadConfig reads .rush/config.json from the specified directory, applying
// defaults for any missing field. Returns the defaults if no config exists.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".rush", "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes config.json to the directory's .rush subdir.
func SaveConfig(dir string, cfg *Config) error {
	rushDir := filepath.Join(dir, ".rush")
	if err := os.MkdirAll(rushDir, 0755); err != nil {
		return fmt.Errorf("failed to create .rush dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(rushDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
