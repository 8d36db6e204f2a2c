package cmd

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFile        = "bankbook.yaml"
	defaultLedgerFile = "ledger.csv"

	envLedger   = "BANKBOOK_LEDGER"
	envCurrency = "BANKBOOK_CURRENCY"
)

// Config holds the application settings. Precedence, lowest to highest:
// defaults, bankbook.yaml, environment (a .env file is honored), flags.
type Config struct {
	// Ledger is the path of the ledger CSV file.
	Ledger string `yaml:"ledger"`
	// Currency is the ISO code used to format totals; empty renders plain decimals.
	Currency string `yaml:"currency"`
}

var appConfig = sync.OnceValue(loadConfig)

func loadConfig() Config {
	cfg := Config{Ledger: defaultLedgerFile}

	if b, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			log.Printf("warning, ignoring invalid %s: %v", configFile, err)
		}
		if cfg.Ledger == "" {
			cfg.Ledger = defaultLedgerFile
		}
	}

	// .env is optional, its absence is not an error.
	_ = godotenv.Load()

	if v := os.Getenv(envLedger); v != "" {
		cfg.Ledger = v
	}
	if v := os.Getenv(envCurrency); v != "" {
		cfg.Currency = v
	}
	return cfg
}
