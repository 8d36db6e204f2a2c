package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook"
	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	criteriaFlags
	interactive bool
}

// criteriaFlags holds the four optional criteria fields, shared by the
// search and edit commands.
type criteriaFlags struct {
	date        string
	category    string
	amount      string
	description string
}

func (c *criteriaFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Match records on this date, YYYY-MM-DD.")
	f.StringVar(&c.category, "c", "", "Match records with this category: 1 or Income, 2 or Expense.")
	f.StringVar(&c.amount, "a", "", "Match records with this amount.")
	f.StringVar(&c.description, "m", "", "Match records with this description.")
}

// criteria validates the given flags and returns the canonical criteria.
func (c *criteriaFlags) criteria() (bankbook.Criteria, error) {
	var out bankbook.Criteria
	for col, raw := range map[bankbook.Column]string{
		bankbook.ColDate:        c.date,
		bankbook.ColCategory:    c.category,
		bankbook.ColAmount:      c.amount,
		bankbook.ColDescription: c.description,
	} {
		if raw == "" {
			continue
		}
		v, err := bankbook.ParseField(col, raw)
		if err != nil {
			return bankbook.Criteria{}, fmt.Errorf("invalid %s criterion: %w", col, err)
		}
		out.SetField(col, v)
	}
	return out, nil
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find records by exact match on any field" }
func (*searchCmd) Usage() string {
	return `bkb search [-d <date>] [-c <category>] [-a <amount>] [-m <description>] [-i]

  Lists the records whose fields are exactly equal to every given criterion,
  with their 1-based ordinals. With -i (or no criteria flags) the criteria
  are prompted for. No criteria at all yields no results.
`
}

func (p *searchCmd) SetFlags(f *flag.FlagSet) {
	p.register(f)
	f.BoolVar(&p.interactive, "i", false, "Prompt for the search criteria.")
}

func (p *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	criteria, err := p.criteria()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if p.interactive {
		criteria, err = NewPrompter(os.Stdin, os.Stdout).Criteria()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if criteria.IsZero() {
		fmt.Println("No search criteria given: nothing to search for.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SearchMarkdown(ledger.Search(criteria), ledger.Header()))
	return subcommands.ExitSuccess
}
