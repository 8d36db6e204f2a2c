package bankbook

import (
	"errors"
	"fmt"
	"iter"

	"github.com/etnz/bankbook/date"
)

// Ledger represents the ordered collection of records plus its header.
//
// Records keep their insertion order. An edit removes the original record and
// appends its replacement, so edited records move to the end.
type Ledger struct {
	header  []string
	records []Record
}

// NewLedger creates an empty ledger with the default header.
func NewLedger() *Ledger {
	return &Ledger{header: DefaultHeader()}
}

// Header returns the column names. The header is fixed at load time and never
// mutated afterwards.
func (l *Ledger) Header() []string { return l.header }

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Append appends records to this ledger.
//
// Records must be already validated. Append performs no duplicate check:
// duplicates are only rejected on Edit. That asymmetry is a deliberate
// policy, not an oversight.
func (l *Ledger) Append(recs ...Record) {
	l.records = append(l.records, recs...)
}

// Records returns an iterator that yields each record in ledger order along
// with its index. With no filter every record is yielded; with filters a
// record is yielded when at least one filter accepts it.
func (l *Ledger) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, rec := range l.records {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(rec) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// ByCategory returns a predicate that filters records by category.
func ByCategory(c Category) func(Record) bool {
	return func(r Record) bool { return r.Category == c }
}

// OnDate returns a predicate that filters records by date.
func OnDate(on date.Date) func(Record) bool {
	return func(r Record) bool { return r.Date == on }
}

// Totals are the three aggregates computed over the whole ledger.
type Totals struct {
	Balance Amount // income minus expense
	Income  Amount // sum of Income-labeled amounts
	Expense Amount // sum of Expense-labeled amounts
}

// Totals computes balance, total income and total expense in a single pass.
func (l *Ledger) Totals() Totals {
	var t Totals
	for _, rec := range l.records {
		switch rec.Category {
		case Income:
			t.Balance = t.Balance.Add(rec.Amount)
			t.Income = t.Income.Add(rec.Amount)
		case Expense:
			t.Balance = t.Balance.Sub(rec.Amount)
			t.Expense = t.Expense.Add(rec.Amount)
		}
	}
	return t
}

// Criteria is a partially-specified record used to filter via exact per-field
// match. Each field holds a canonical text value, or "" for unconstrained.
type Criteria struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// IsZero reports whether no field of the criteria is specified.
func (c Criteria) IsZero() bool { return c == Criteria{} }

// field returns the criterion for the given column.
func (c Criteria) field(col Column) string {
	switch col {
	case ColDate:
		return c.Date
	case ColCategory:
		return c.Category
	case ColAmount:
		return c.Amount
	case ColDescription:
		return c.Description
	default:
		return ""
	}
}

// SetField sets the criterion for the given column.
func (c *Criteria) SetField(col Column, value string) {
	switch col {
	case ColDate:
		c.Date = value
	case ColCategory:
		c.Category = value
	case ColAmount:
		c.Amount = value
	case ColDescription:
		c.Description = value
	}
}

// Matches reports whether every specified criterion is exactly equal to the
// record's canonical field at that column.
func (c Criteria) Matches(r Record) bool {
	for col := ColDate; col < NumColumns; col++ {
		if want := c.field(col); want != "" && want != r.Field(col) {
			return false
		}
	}
	return true
}

// Match is one search hit: a record and its absolute index in the ledger.
type Match struct {
	Index  int
	Record Record
}

// Search returns the records matching the criteria, in ledger order, with
// their absolute indices.
//
// Fully unspecified criteria yield no matches at all: "no criteria" means "no
// results", not "match everything". The scan is skipped entirely.
func (l *Ledger) Search(c Criteria) []Match {
	if c.IsZero() {
		return nil
	}
	var matches []Match
	for i, rec := range l.records {
		if c.Matches(rec) {
			matches = append(matches, Match{Index: i, Record: rec})
		}
	}
	return matches
}

// Contains reports whether an exactly identical record already exists.
func (l *Ledger) Contains(r Record) bool {
	for _, rec := range l.records {
		if rec.Equal(r) {
			return true
		}
	}
	return false
}

// The three recoverable edit failures. None is fatal: the ledger is left
// untouched and the caller reports the outcome to the user.
var (
	// ErrNoMatch is returned when the search criteria select no record.
	ErrNoMatch = errors.New("no matching records")
	// ErrInvalidSelection is returned when the ordinal falls outside the match list.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrDuplicate is returned when the edited record would duplicate an existing one.
	ErrDuplicate = errors.New("record already exists")
)

// Edit replaces one record selected by criteria and a 1-based ordinal into
// the match list. Each specified field of updates (canonical text, validated
// by the caller) overrides the corresponding field of the old record; an
// unspecified field keeps the old value.
//
// The candidate is rejected with ErrDuplicate when it equals any existing
// record, including the one being replaced: a no-op edit is itself a
// duplicate. On success the original is removed and the candidate appended,
// and the committed record is returned.
func (l *Ledger) Edit(c Criteria, ordinal int, updates Criteria) (Record, error) {
	matches := l.Search(c)
	if len(matches) == 0 {
		return Record{}, ErrNoMatch
	}
	if ordinal < 1 || ordinal > len(matches) {
		return Record{}, fmt.Errorf("%w: %d is not in [1, %d]", ErrInvalidSelection, ordinal, len(matches))
	}
	m := matches[ordinal-1]

	candidate, err := m.Record.apply(updates)
	if err != nil {
		return Record{}, err
	}
	if l.Contains(candidate) {
		return Record{}, ErrDuplicate
	}

	l.records = append(l.records[:m.Index], l.records[m.Index+1:]...)
	l.records = append(l.records, candidate)
	return candidate, nil
}

// apply builds the replacement candidate, taking each specified field from
// updates and the rest from the old record.
func (r Record) apply(updates Criteria) (Record, error) {
	candidate := r
	if updates.Date != "" {
		d, err := ParseDate(updates.Date)
		if err != nil {
			return Record{}, err
		}
		candidate.Date = d
	}
	if updates.Category != "" {
		c, err := ParseCategory(updates.Category)
		if err != nil {
			return Record{}, err
		}
		candidate.Category = c
	}
	if updates.Amount != "" {
		a, err := ParseAmount(updates.Amount)
		if err != nil {
			return Record{}, err
		}
		candidate.Amount = a
	}
	if updates.Description != "" {
		d, err := ParseDescription(updates.Description)
		if err != nil {
			return Record{}, err
		}
		candidate.Description = d
	}
	return candidate, nil
}
