// Package ledger groups export rows into transactions and keeps the running
// balance of every account across the whole stream.
package ledger

import "github.com/cleared-dev/csv2html/internal/model"

// Entry is the header line of a transaction.
type Entry struct {
	Odd           bool // parity of the transaction in the stream, 1-based
	TransactionID string
	Date          string
	Number        string
	Description   string
	Debit         *model.Money // nil when blank
	Credit        *model.Money // nil when blank
	Balance       *model.Money // signed running balance; nil if the account was never posted to
	RatePrice     string
}

// Split is one posting line of a transaction.
type Split struct {
	First     bool // the entry row's own posting
	Action    string
	Memo      string
	Account   string
	Debit     *model.Money
	Credit    *model.Money
	RatePrice string
}

// IsBlank reports whether the split shows neither a debit nor a credit.
func (s Split) IsBlank() bool {
	return s.Debit == nil && s.Credit == nil
}

// Group is one transaction: its entry and its splits in input order.
// Entry is nil only for splits that precede the first transaction ID in
// the stream.
type Group struct {
	Entry  *Entry
	Splits []Split
}

// Sink receives each transaction once it is complete.
type Sink interface {
	WriteGroup(g Group) error
}
