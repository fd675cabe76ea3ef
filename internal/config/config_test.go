package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigReturnsDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TableCount != 4 {
		t.Errorf("expected default table count 4, got %d", cfg.TableCount)
	}
	if cfg.StoveSlots != 3 {
		t.Errorf("expected default 3 stove slots, got %d", cfg.StoveSlots)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.TableCount = 6
	cfg.ServiceMs = 240_000

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.TableCount != 6 || got.ServiceMs != 240_000 {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestLoadConfigAppliesDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".rush"), 0755); err != nil {
		t.Fatal(err)
	}
	partial := []byte(`{"version":"1","table_count":8}`)
	if err := os.WriteFile(filepath.Join(dir, ".rush", "config.json"), partial, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.TableCount != 8 {
		t.Errorf("expected table count 8, got %d", got.TableCount)
	}
	if got.CustomerPatienceMs != 45_000 {
		t.Errorf("expected default patience, got %d", got.CustomerPatienceMs)
	}
}
