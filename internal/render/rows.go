// Package render lays out transaction groups as rows of an HTML ledger table
// and writes the surrounding document.
package render

import (
	"html"
	"html/template"

	"github.com/cleared-dev/csv2html/internal/amount"
	"github.com/cleared-dev/csv2html/internal/ledger"
	"github.com/cleared-dev/csv2html/internal/model"
)

// Row classes.
const (
	ClassEntryOdd   = "row-entry-odd"
	ClassEntryEven  = "row-entry-even"
	ClassSplitFirst = "row-split-first"
	ClassSplitRest  = "row-split-rest"
)

// Row is one <tr> of the ledger table. Entry rows use Date, Number,
// Description, Transfer and Balance; split rows use Action, Memo and
// Account. Text fields are escaped on output, the HTML fields are not.
type Row struct {
	Entry         bool
	Class         string
	TransactionID string
	Date          string
	Number        string
	Description   string
	Transfer      string
	Action        string
	Memo          string
	Account       string
	Debit         template.HTML
	Credit        template.HTML
	Balance       template.HTML
	RatePrice     string
}

// Rows lays out a group. A simple transfer (an entry with exactly two
// splits, neither showing an amount) collapses into a single entry row
// whose transfer column names the second split's account.
func Rows(g ledger.Group) []Row {
	if g.Entry != nil && collapses(g.Splits) {
		row := entryRow(g.Entry)
		row.Transfer = g.Splits[1].Account
		return []Row{row}
	}

	rows := make([]Row, 0, len(g.Splits)+1)
	if g.Entry != nil {
		rows = append(rows, entryRow(g.Entry))
	}
	for _, s := range g.Splits {
		rows = append(rows, splitRow(s))
	}
	return rows
}

func collapses(splits []ledger.Split) bool {
	return len(splits) == 2 && splits[0].IsBlank() && splits[1].IsBlank()
}

func entryRow(e *ledger.Entry) Row {
	class := ClassEntryEven
	if e.Odd {
		class = ClassEntryOdd
	}
	return Row{
		Entry:         true,
		Class:         class,
		TransactionID: e.TransactionID,
		Date:          e.Date,
		Number:        e.Number,
		Description:   e.Description,
		Debit:         MoneyHTML(e.Debit),
		Credit:        MoneyHTML(e.Credit),
		Balance:       BalanceHTML(e.Balance),
		RatePrice:     e.RatePrice,
	}
}

func splitRow(s ledger.Split) Row {
	class := ClassSplitRest
	if s.First {
		class = ClassSplitFirst
	}
	return Row{
		Class:     class,
		Action:    s.Action,
		Memo:      s.Memo,
		Account:   s.Account,
		Debit:     MoneyHTML(s.Debit),
		Credit:    MoneyHTML(s.Credit),
		RatePrice: s.RatePrice,
	}
}

// MoneyHTML renders a debit or credit cell. A nil amount is an empty cell.
func MoneyHTML(m *model.Money) template.HTML {
	if m == nil {
		return ""
	}
	return template.HTML(`<span class="symbol">` + html.EscapeString(m.Symbol) + `</span>` + amount.Format(m.Value))
}

// BalanceHTML renders a running balance, marking negative balances.
func BalanceHTML(m *model.Money) template.HTML {
	if m == nil {
		return ""
	}
	if m.IsNegative() {
		return template.HTML(`<span class="negative-symbol">` + html.EscapeString(m.Symbol) + `</span>` +
			`<span class="negative">` + amount.Format(m.Value) + `</span>`)
	}
	return MoneyHTML(m)
}
