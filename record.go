package bankbook

import (
	"fmt"

	"github.com/etnz/bankbook/date"
)

// Category tells whether a record adds to or subtracts from the balance.
type Category int

const (
	// Income adds the record amount to the balance.
	Income Category = iota
	// Expense subtracts the record amount from the balance.
	Expense
)

func (c Category) String() string {
	switch c {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// ParseCategory parses a category display label.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Income":
		return Income, nil
	case "Expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}

// Column identifies one of the four record columns, in storage order.
type Column int

const (
	ColDate Column = iota
	ColCategory
	ColAmount
	ColDescription

	// NumColumns is the fixed width of a record.
	NumColumns = 4
)

func (c Column) String() string {
	switch c {
	case ColDate:
		return "Date"
	case ColCategory:
		return "Category"
	case ColAmount:
		return "Amount"
	case ColDescription:
		return "Description"
	default:
		return "unknown"
	}
}

// DefaultHeader returns the column names written when a new ledger is created.
func DefaultHeader() []string {
	return []string{ColDate.String(), ColCategory.String(), ColAmount.String(), ColDescription.String()}
}

// Record is one ledger entry.
type Record struct {
	Date        date.Date
	Category    Category
	Amount      Amount
	Description string
}

// NewRecord builds a record from already validated fields.
func NewRecord(on date.Date, cat Category, amount Amount, description string) Record {
	return Record{Date: on, Category: cat, Amount: amount, Description: description}
}

// Field returns the canonical text form of one column of the record.
func (r Record) Field(c Column) string {
	switch c {
	case ColDate:
		return r.Date.String()
	case ColCategory:
		return r.Category.String()
	case ColAmount:
		return r.Amount.String()
	case ColDescription:
		return r.Description
	default:
		return ""
	}
}

// Fields returns the record as a row of canonical text fields, in column order.
func (r Record) Fields() []string {
	row := make([]string, NumColumns)
	for c := ColDate; c < NumColumns; c++ {
		row[c] = r.Field(c)
	}
	return row
}

// Equal reports field-wise equality of two records.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Category == o.Category &&
		r.Amount.Equal(o.Amount) &&
		r.Description == o.Description
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %s %q", r.Date, r.Category, r.Amount, r.Description)
}
