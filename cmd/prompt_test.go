package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/bankbook"
)

func TestPrompter_Record(t *testing.T) {
	// one invalid input per field, each re-prompted once.
	in := strings.Join([]string{
		"2023-13-01", // bad month
		"2023-05-01",
		"7", // bad code
		"1",
		"abc", // bad amount
		"100.0",
		"", // empty description
		"salary",
	}, "\n") + "\n"
	var out bytes.Buffer

	rec, err := NewPrompter(strings.NewReader(in), &out).Record()
	if err != nil {
		t.Fatal(err)
	}
	want := "2023-05-01 Income 100 \"salary\""
	if got := rec.String(); got != want {
		t.Errorf("Record() = %s, want %s", got, want)
	}
	// each failure is reported to the user once.
	for _, msg := range []string{"invalid date", "invalid category code", "invalid amount", "empty description"} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("output should report %q:\n%s", msg, out.String())
		}
	}
}

func TestPrompter_RecordEOF(t *testing.T) {
	if _, err := NewPrompter(strings.NewReader("2023-05-01\n"), &bytes.Buffer{}).Record(); err == nil {
		t.Error("exhausted input should be an error, not an infinite loop")
	}
}

func TestPrompter_Criteria(t *testing.T) {
	// date skipped, category by code, amount invalid (skipped), description set.
	in := "\n1\nabc\nfood\n"
	var out bytes.Buffer

	c, err := NewPrompter(strings.NewReader(in), &out).Criteria()
	if err != nil {
		t.Fatal(err)
	}
	want := bankbook.Criteria{Category: "Income", Description: "food"}
	if c != want {
		t.Errorf("Criteria() = %+v, want %+v", c, want)
	}
	if !strings.Contains(out.String(), "skipping Amount") {
		t.Errorf("invalid criterion should be reported:\n%s", out.String())
	}
}

func TestPrompter_Updates(t *testing.T) {
	old := bankbook.NewRecord(
		must(bankbook.ParseDate("2023-05-02")),
		bankbook.Expense,
		must(bankbook.ParseAmount("40")),
		"food",
	)

	// keep date, keep category (invalid input), replace amount, keep description.
	in := "\nnope\n45.5\n\n"
	var out bytes.Buffer

	u, err := NewPrompter(strings.NewReader(in), &out).Updates(old)
	if err != nil {
		t.Fatal(err)
	}
	want := bankbook.Criteria{Amount: "45.5"}
	if u != want {
		t.Errorf("Updates() = %+v, want %+v", u, want)
	}
	if !strings.Contains(out.String(), "keeping current Category") {
		t.Errorf("invalid replacement should be reported:\n%s", out.String())
	}
	// prompts show the current values.
	if !strings.Contains(out.String(), "[food]") {
		t.Errorf("prompt should show the current value:\n%s", out.String())
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
