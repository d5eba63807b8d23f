// Package gnucash reads the transaction CSV export of GnuCash.
package gnucash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cleared-dev/csv2html/internal/model"
)

// Export column names.
const (
	ColTransactionID    = "Transaction ID"
	ColDate             = "Date"
	ColNumber           = "Number"
	ColDescription      = "Description"
	ColAction           = "Action"
	ColMemo             = "Memo"
	ColFullAccountName  = "Full Account Name"
	ColAmountWithSymbol = "Amount With Sym"
	ColAmountNum        = "Amount Num."
	ColRatePrice        = "Rate/Price"
)

// Reader decodes rows from an export. Columns are located by header name;
// a missing column or a short row reads as empty strings, and columns the
// export adds beyond the known ones are ignored.
type Reader struct {
	cr     *csv.Reader
	header map[string]int
	line   int
}

// NewReader reads the header row of r. The input is decoded as UTF-8,
// a leading byte order mark is dropped and invalid bytes become U+FFFD.
func NewReader(r io.Reader) (*Reader, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rd := &Reader{cr: cr}
	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return rd, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	rd.line, _ = cr.FieldPos(0)

	rd.header = make(map[string]int, len(rec))
	// A repeated column name refers to its last occurrence.
	for i, name := range rec {
		rd.header[name] = i
	}
	return rd, nil
}

// Read returns the next row, or io.EOF after the last one.
func (r *Reader) Read() (model.Row, error) {
	if r.header == nil {
		return model.Row{}, io.EOF
	}
	rec, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.Row{}, io.EOF
		}
		return model.Row{}, fmt.Errorf("reading CSV: %w", err)
	}
	r.line, _ = r.cr.FieldPos(0)

	return model.Row{
		TransactionID:    r.field(rec, ColTransactionID),
		Date:             r.field(rec, ColDate),
		Number:           r.field(rec, ColNumber),
		Description:      r.field(rec, ColDescription),
		Action:           r.field(rec, ColAction),
		Memo:             r.field(rec, ColMemo),
		Account:          r.field(rec, ColFullAccountName),
		AmountWithSymbol: r.field(rec, ColAmountWithSymbol),
		AmountNum:        r.field(rec, ColAmountNum),
		RatePrice:        r.field(rec, ColRatePrice),
	}, nil
}

// Line returns the line number where the last row read starts.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) field(rec []string, name string) string {
	i, ok := r.header[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
