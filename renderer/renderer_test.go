package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/bankbook"
)

func testLedger(t *testing.T) *bankbook.Ledger {
	t.Helper()
	l := bankbook.NewLedger()
	for _, row := range [][4]string{
		{"2023-05-01", "Income", "100.0", "salary"},
		{"2023-05-02", "Expense", "40.0", "food"},
	} {
		d, err := bankbook.ParseDate(row[0])
		if err != nil {
			t.Fatal(err)
		}
		c, err := bankbook.ParseCategory(row[1])
		if err != nil {
			t.Fatal(err)
		}
		a, err := bankbook.ParseAmount(row[2])
		if err != nil {
			t.Fatal(err)
		}
		l.Append(bankbook.NewRecord(d, c, a, row[3]))
	}
	return l
}

func TestLedgerMarkdown(t *testing.T) {
	got := LedgerMarkdown(testLedger(t), "")

	for _, want := range []string{
		"# Ledger",
		"2023-05-01", "salary", "100.00",
		"2023-05-02", "food", "40.00",
		"## Totals",
		"60.00", // balance
	} {
		if !strings.Contains(got, want) {
			t.Errorf("LedgerMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestLedgerMarkdown_Empty(t *testing.T) {
	got := LedgerMarkdown(bankbook.NewLedger(), "")
	if strings.Contains(got, "# Ledger") {
		t.Errorf("empty ledger should skip the record table:\n%s", got)
	}
	if !strings.Contains(got, "## Totals") {
		t.Errorf("totals should always be rendered:\n%s", got)
	}
}

func TestLedgerMarkdown_Currency(t *testing.T) {
	got := LedgerMarkdown(testLedger(t), "USD")
	if !strings.Contains(got, "$60.00") {
		t.Errorf("totals should be currency formatted:\n%s", got)
	}
}

func TestSearchMarkdown(t *testing.T) {
	l := testLedger(t)
	matches := l.Search(bankbook.Criteria{Category: "Expense"})
	got := SearchMarkdown(matches, l.Header())

	for _, want := range []string{"1 record(s) found.", "food", "40.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("SearchMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestSearchMarkdown_NoMatch(t *testing.T) {
	got := SearchMarkdown(nil, bankbook.DefaultHeader())
	if !strings.Contains(got, "0 record(s) found.") {
		t.Errorf("SearchMarkdown = %s", got)
	}
}
