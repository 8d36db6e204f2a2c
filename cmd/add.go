package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook"
	"github.com/google/subcommands"
)

type addCmd struct {
	date        string
	category    string
	amount      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new income or expense record to the ledger" }
func (*addCmd) Usage() string {
	return `bkb add [-d <date>] [-c <category>] [-a <amount>] [-m <description>]

  Appends one record and rewrites the ledger file. Fields not given as flags
  are prompted for; an invalid interactive value is re-prompted until it
  validates. No duplicate check is performed on add.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Record date, YYYY-MM-DD.")
	f.StringVar(&p.category, "c", "", "Record category: 1 or Income, 2 or Expense.")
	f.StringVar(&p.amount, "a", "", "Record amount, a decimal number.")
	f.StringVar(&p.description, "m", "", "Record description, 1 to 20 characters.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prompter := NewPrompter(os.Stdin, os.Stdout)

	on, err := fieldValue(prompter, p.date, "Date (YYYY-MM-DD): ", bankbook.ParseDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return usageOrFailure(p.date)
	}
	cat, err := fieldValue(prompter, p.category, "Category (1 Income, 2 Expense): ", parseCategoryArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return usageOrFailure(p.category)
	}
	amount, err := fieldValue(prompter, p.amount, "Amount: ", bankbook.ParseAmount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return usageOrFailure(p.amount)
	}
	description, err := fieldValue(prompter, p.description, "Description (1-20 characters): ", bankbook.ParseDescription)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return usageOrFailure(p.description)
	}

	rec := bankbook.NewRecord(on, cat, amount, description)
	ledger.Append(rec)
	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added to %s: %s\n", ledgerPath(), rec)
	return subcommands.ExitSuccess
}

// fieldValue parses the flag value when given, and prompts otherwise.
func fieldValue[T any](p *Prompter, flagValue, label string, parse func(string) (T, error)) (T, error) {
	if flagValue != "" {
		return parse(flagValue)
	}
	return promptValue(p, label, parse)
}

// usageOrFailure reports a bad flag value as a usage error; any other
// failure (like a closed stdin) is an ordinary one.
func usageOrFailure(flagValue string) subcommands.ExitStatus {
	if flagValue != "" {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// parseCategoryArg accepts the interactive code ("1", "2") as well as the
// display label ("Income", "Expense").
func parseCategoryArg(raw string) (bankbook.Category, error) {
	if c, err := bankbook.ParseCategoryCode(raw); err == nil {
		return c, nil
	}
	return bankbook.ParseCategory(raw)
}
