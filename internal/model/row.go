package model

// Row is one record of a GnuCash transaction export. Each row is one split;
// the first split of a transaction carries the transaction ID, date and
// description, and the following splits leave those columns empty.
type Row struct {
	TransactionID    string // empty on continuation rows
	Date             string
	Number           string
	Description      string
	Action           string
	Memo             string
	Account          string // full account name, e.g. "Assets:Current Assets:Checking"
	AmountWithSymbol string // display form, e.g. "$1,234.56"
	AmountNum        string // numeric form, e.g. "-1,234.56" or "(1,234.56)"
	RatePrice        string
}

// StartsTransaction reports whether the row opens a new transaction.
func (r Row) StartsTransaction() bool {
	return r.TransactionID != ""
}
