package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envLedger, "")
	t.Setenv(envCurrency, "")

	cfg := loadConfig()
	if cfg.Ledger != defaultLedgerFile {
		t.Errorf("Ledger = %q, want %q", cfg.Ledger, defaultLedgerFile)
	}
	if cfg.Currency != "" {
		t.Errorf("Currency = %q, want empty", cfg.Currency)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("ledger: books/main.csv\ncurrency: EUR\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv(envLedger, "")
	t.Setenv(envCurrency, "")

	cfg := loadConfig()
	if cfg.Ledger != "books/main.csv" {
		t.Errorf("Ledger = %q, want books/main.csv", cfg.Ledger)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("ledger: books/main.csv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv(envLedger, "other.csv")
	t.Setenv(envCurrency, "USD")

	cfg := loadConfig()
	if cfg.Ledger != "other.csv" {
		t.Errorf("Ledger = %q, want other.csv", cfg.Ledger)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
}
