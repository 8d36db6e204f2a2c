// Package renderer renders ledger content to markdown strings.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/bankbook"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the full ledger table followed by its totals.
// currency selects the display format of the totals; empty means plain
// decimals.
func LedgerMarkdown(l *bankbook.Ledger, currency string) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool { return renderRecords(w, l) })
	renderTotals(&b, l.Totals(), currency)
	return b.String()
}

// renderRecords writes the record table, or nothing when the ledger is empty.
func renderRecords(w io.Writer, l *bankbook.Ledger) bool {
	if l.Len() == 0 {
		return false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger")
	rows := make([][]string, 0, l.Len())
	for _, rec := range l.Records() {
		rows = append(rows, row(rec))
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    l.Header(),
		Rows:      rows,
	})

	fmt.Fprint(w, doc.String())
	return true
}

func renderTotals(w io.Writer, t bankbook.Totals, currency string) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{md.Bold("Balance"), t.Balance.Format(currency)},
			{"Income", t.Income.Format(currency)},
			{"Expense", t.Expense.Format(currency)},
		},
	})

	fmt.Fprint(w, doc.String())
}

// SearchMarkdown renders search matches with their 1-based ordinals, the
// numbers used to select a record for editing.
func SearchMarkdown(matches []bankbook.Match, header []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Search Results")
	doc.PlainText(fmt.Sprintf("%d record(s) found.", len(matches)))

	if len(matches) > 0 {
		rows := make([][]string, 0, len(matches))
		for i, m := range matches {
			rows = append(rows, append([]string{strconv.Itoa(i + 1)}, row(m.Record)...))
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    append([]string{"#"}, header...),
			Rows:      rows,
		})
	}

	return doc.String()
}

// Record renders a single record to a one line string.
func Record(r bankbook.Record) string {
	return fmt.Sprintf("%s | %s | %s | %s", r.Date, r.Category, r.Amount.StringFixed(), r.Description)
}

// row formats one record as a table row; amounts are shown with two decimals.
func row(r bankbook.Record) []string {
	return []string{r.Date.String(), r.Category.String(), r.Amount.StringFixed(), r.Description}
}
