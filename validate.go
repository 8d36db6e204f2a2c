package bankbook

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/etnz/bankbook/date"
	"github.com/shopspring/decimal"
)

// This file holds the per-column field validators. Each one is pure: raw text
// in, normalized value or error out. Re-prompting on failure belongs to the
// caller, not here.

// maxDescriptionLen caps the description column, in runes.
const maxDescriptionLen = 20

// ParseDate validates a raw date input. The canonical form is the input
// itself: only strict "YYYY-MM-DD" real calendar dates are accepted.
func ParseDate(raw string) (date.Date, error) {
	return date.Parse(raw)
}

// ParseCategoryCode maps the interactive category codes to their labels:
// "1" is Income and "2" is Expense. Anything else is an error.
func ParseCategoryCode(raw string) (Category, error) {
	switch raw {
	case "1":
		return Income, nil
	case "2":
		return Expense, nil
	default:
		return 0, fmt.Errorf("invalid category code %q: want 1 (Income) or 2 (Expense)", raw)
	}
}

// ParseAmount validates a raw amount input and returns it in canonical
// decimal form. The canonicalization is idempotent: parsing the String of an
// Amount yields an equal Amount.
func ParseAmount(raw string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return Amount{value: d}, nil
}

// ParseDescription validates a raw description input: between 1 and 20
// characters. Empty descriptions are rejected, there is no placeholder
// substitution.
func ParseDescription(raw string) (string, error) {
	n := utf8.RuneCountInString(raw)
	if n == 0 {
		return "", fmt.Errorf("empty description")
	}
	if n > maxDescriptionLen {
		return "", fmt.Errorf("description too long: %d characters, max %d", n, maxDescriptionLen)
	}
	return raw, nil
}

// ParseField validates a raw input against the rule of the given column and
// returns its canonical text form.
func ParseField(col Column, raw string) (string, error) {
	switch col {
	case ColDate:
		d, err := ParseDate(raw)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case ColCategory:
		// accept the interactive code first, then the display label.
		if c, err := ParseCategoryCode(raw); err == nil {
			return c.String(), nil
		}
		c, err := ParseCategory(raw)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	case ColAmount:
		a, err := ParseAmount(raw)
		if err != nil {
			return "", err
		}
		return a.String(), nil
	case ColDescription:
		return ParseDescription(raw)
	default:
		return "", fmt.Errorf("unknown column %d", col)
	}
}
