package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	currency string
}

func (*balanceCmd) Name() string { return "balance" }
func (*balanceCmd) Synopsis() string {
	return "show all records with the balance, income and expense totals"
}
func (*balanceCmd) Usage() string {
	return `bkb balance [-currency <code>]

  Prints every record of the ledger followed by the current balance, the
  total income and the total expense.
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "currency", "", "ISO currency code used to format totals (defaults to configuration)")
}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency := p.currency
	if currency == "" {
		currency = appConfig().Currency
	}

	printMarkdown(renderer.LedgerMarkdown(ledger, currency))
	return subcommands.ExitSuccess
}
