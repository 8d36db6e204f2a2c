// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/bankbook"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers each of them on its commander.
var Commands = []subcommands.Command{
	&balanceCmd{},
	&addCmd{},
	&searchCmd{},
	&editCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger CSV file (overrides configuration)")

// ledgerPath resolves the ledger file location: flag first, then configuration.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return appConfig().Ledger
}

// DecodeLedgerFile loads the ledger from the app ledger path.
// A missing file is not an error: the session starts with an empty ledger.
func DecodeLedgerFile() (*bankbook.Ledger, error) {
	path := ledgerPath()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, starting with an empty ledger", path)
		return bankbook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := bankbook.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedgerFile rewrites the whole ledger to the app ledger path.
// The write goes to a temp file first and is moved in place, so a failed
// save never leaves a half-written ledger behind.
func SaveLedgerFile(l *bankbook.Ledger) error {
	path := ledgerPath()
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := bankbook.EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write ledger file %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace ledger file %q: %w", path, err)
	}
	return nil
}
