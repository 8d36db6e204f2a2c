package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/etnz/bankbook"
)

// Prompter reads field values interactively. Validation stays in the
// bankbook package; the prompter only acquires raw lines and decides how a
// validation failure is handled: re-prompt on add, skip or keep-old on
// search and edit.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads lines from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the prompt and reads one raw line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// promptValue keeps prompting until parse accepts the input.
func promptValue[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := p.Line(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, perr := parse(raw)
		if perr != nil {
			fmt.Fprintf(p.out, "%v\n", perr)
			continue
		}
		return v, nil
	}
}

// Record collects the four fields of a new record, re-prompting each field
// until it validates.
func (p *Prompter) Record() (bankbook.Record, error) {
	on, err := promptValue(p, "Date (YYYY-MM-DD): ", bankbook.ParseDate)
	if err != nil {
		return bankbook.Record{}, err
	}
	cat, err := promptValue(p, "Category (1 Income, 2 Expense): ", bankbook.ParseCategoryCode)
	if err != nil {
		return bankbook.Record{}, err
	}
	amount, err := promptValue(p, "Amount: ", bankbook.ParseAmount)
	if err != nil {
		return bankbook.Record{}, err
	}
	description, err := promptValue(p, "Description (1-20 characters): ", bankbook.ParseDescription)
	if err != nil {
		return bankbook.Record{}, err
	}
	return bankbook.NewRecord(on, cat, amount, description), nil
}

// Criteria collects the four optional search criteria. An empty or invalid
// input leaves the column unconstrained.
func (p *Prompter) Criteria() (bankbook.Criteria, error) {
	var c bankbook.Criteria
	for col := bankbook.ColDate; col < bankbook.NumColumns; col++ {
		raw, err := p.Line(fmt.Sprintf("%s (enter to skip): ", col))
		if err != nil {
			return c, err
		}
		if raw == "" {
			continue
		}
		v, perr := bankbook.ParseField(col, raw)
		if perr != nil {
			fmt.Fprintf(p.out, "skipping %s: %v\n", col, perr)
			continue
		}
		c.SetField(col, v)
	}
	return c, nil
}

// Updates collects replacement values for an edited record. An empty or
// invalid input keeps the current value. This is the one place a validation
// failure is not an error.
func (p *Prompter) Updates(old bankbook.Record) (bankbook.Criteria, error) {
	var u bankbook.Criteria
	for col := bankbook.ColDate; col < bankbook.NumColumns; col++ {
		raw, err := p.Line(fmt.Sprintf("%s [%s] (enter to keep): ", col, old.Field(col)))
		if err != nil {
			return u, err
		}
		if raw == "" {
			continue
		}
		v, perr := bankbook.ParseField(col, raw)
		if perr != nil {
			fmt.Fprintf(p.out, "keeping current %s: %v\n", col, perr)
			continue
		}
		u.SetField(col, v)
	}
	return u, nil
}
