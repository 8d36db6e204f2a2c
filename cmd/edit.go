package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/bankbook"
	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	criteriaFlags
	ordinal int
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace fields of an existing record" }
func (*editCmd) Usage() string {
	return `bkb edit [-d <date>] [-c <category>] [-a <amount>] [-m <description>] [-n <ordinal>]

  Selects records exactly like search, picks one by its 1-based ordinal
  (prompted when -n is not given), then prompts a replacement value for each
  field; enter keeps the current value. The edit is rejected when the result
  would duplicate any existing record. The edited record moves to the end of
  the ledger.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	p.register(f)
	f.IntVar(&p.ordinal, "n", 0, "1-based ordinal of the record to edit within the matches.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prompter := NewPrompter(os.Stdin, os.Stdout)

	criteria, err := p.criteria()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if criteria.IsZero() {
		if criteria, err = prompter.Criteria(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	matches := ledger.Search(criteria)
	if len(matches) == 0 {
		fmt.Println("No matching records.")
		return subcommands.ExitSuccess
	}

	ordinal := p.ordinal
	if ordinal == 0 {
		printMarkdown(renderer.SearchMarkdown(matches, ledger.Header()))
		ordinal, err = promptValue(prompter, fmt.Sprintf("Record to edit [1-%d]: ", len(matches)), strconv.Atoi)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if ordinal < 1 || ordinal > len(matches) {
		fmt.Printf("Invalid selection: %d is not in [1, %d].\n", ordinal, len(matches))
		return subcommands.ExitSuccess
	}

	updates, err := prompter.Updates(matches[ordinal-1].Record)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	committed, err := ledger.Edit(criteria, ordinal, updates)
	switch {
	case errors.Is(err, bankbook.ErrNoMatch):
		fmt.Println("No matching records.")
		return subcommands.ExitSuccess
	case errors.Is(err, bankbook.ErrInvalidSelection):
		fmt.Printf("Invalid selection: %v.\n", err)
		return subcommands.ExitSuccess
	case errors.Is(err, bankbook.ErrDuplicate):
		fmt.Println("Record already exists: nothing changed.")
		return subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated: %s\n", committed)
	return subcommands.ExitSuccess
}
