// Package bankbook implements a single-user personal ledger.
//
// A ledger is an ordered collection of dated income and expense records,
// persisted as a flat CSV table and fully rewritten after every mutation.
// The package provides the record data model, the per-column field
// validators, the store operations (totals, append, search, edit with
// duplicate rejection), and the CSV codec. Interactive input and terminal
// rendering live in the cmd and renderer packages.
package bankbook
