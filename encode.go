package bankbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// The ledger is persisted as a comma-separated UTF-8 table: a header row
// followed by one row per record, in ledger order. Every mutation rewrites
// the whole table; there is no incremental persistence.

// DecodeLedger reads a CSV stream into a Ledger.
//
// The header row is kept verbatim and not validated against the default
// header. Every following row must have exactly NumColumns fields and every
// field must pass its column validator: a malformed row aborts the load with
// an error naming the offending line, it is never skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = NumColumns

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		// An empty stream is a brand new ledger.
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger header: %w", err)
	}

	ledger := &Ledger{header: header}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed ledger row on line %d: %w", line, err)
		}
		rec, err := decodeRecord(row)
		if err != nil {
			return nil, fmt.Errorf("malformed ledger row on line %d: %w", line, err)
		}
		ledger.records = append(ledger.records, rec)
	}
	return ledger, nil
}

func decodeRecord(row []string) (Record, error) {
	on, err := ParseDate(row[ColDate])
	if err != nil {
		return Record{}, err
	}
	cat, err := ParseCategory(row[ColCategory])
	if err != nil {
		return Record{}, err
	}
	amount, err := ParseAmount(row[ColAmount])
	if err != nil {
		return Record{}, err
	}
	description, err := ParseDescription(row[ColDescription])
	if err != nil {
		return Record{}, err
	}
	return Record{Date: on, Category: cat, Amount: amount, Description: description}, nil
}

// EncodeLedger writes the whole ledger as a CSV table: header first, then
// every record in ledger order, fields in canonical form.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(l.Header()); err != nil {
		return fmt.Errorf("cannot write ledger header: %w", err)
	}
	for _, rec := range l.Records() {
		if err := cw.Write(rec.Fields()); err != nil {
			return fmt.Errorf("cannot write ledger row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
