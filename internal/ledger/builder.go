package ledger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csv2html/internal/amount"
	"github.com/cleared-dev/csv2html/internal/model"
)

// Options configures a Builder.
type Options struct {
	// InvertBalanceSign accumulates credits as increases and debits as
	// decreases, for ledgers of liability or income accounts.
	InvertBalanceSign bool
	Logger            *slog.Logger
}

// Builder turns a stream of rows into transaction groups.
//
// A group is open from the row carrying its transaction ID until the next
// such row or Close. Only the entry row of a transaction posts to the
// running balance; continuation rows are displayed but never posted.
type Builder struct {
	sink     Sink
	invert   bool
	log      *slog.Logger
	balances *balances
	open     *Group // nil while no group is open
	odd      bool
	flushed  int
}

// NewBuilder creates a Builder that writes completed groups to sink.
func NewBuilder(sink Sink, opts Options) *Builder {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{
		sink:     sink,
		invert:   opts.InvertBalanceSign,
		log:      log,
		balances: newBalances(),
	}
}

// Add consumes one row. A row with a transaction ID flushes the open group
// before starting its own.
func (b *Builder) Add(row model.Row) error {
	amt, err := amount.Parse(row.AmountWithSymbol, row.AmountNum)
	if err != nil {
		return fmt.Errorf("parsing amount: %w", err)
	}
	debit, credit := sides(amt)

	if !row.StartsTransaction() {
		if b.open == nil {
			b.open = &Group{}
		}
		b.open.Splits = append(b.open.Splits, Split{
			First:     len(b.open.Splits) == 0,
			Action:    row.Action,
			Memo:      row.Memo,
			Account:   row.Account,
			Debit:     debit,
			Credit:    credit,
			RatePrice: row.RatePrice,
		})
		return nil
	}

	if err := b.flush(); err != nil {
		return err
	}

	if !amt.IsBlank() {
		b.balances.post(row.Account, b.delta(amt))
	}
	var balance *model.Money
	if v, ok := b.balances.get(row.Account); ok {
		balance = &model.Money{Value: v, Symbol: amt.Symbol}
	}

	b.odd = !b.odd
	b.open = &Group{
		Entry: &Entry{
			Odd:           b.odd,
			TransactionID: row.TransactionID,
			Date:          row.Date,
			Number:        row.Number,
			Description:   row.Description,
			Debit:         debit,
			Credit:        credit,
			Balance:       balance,
			RatePrice:     row.RatePrice,
		},
		Splits: []Split{{
			First:     true,
			Action:    row.Action,
			Memo:      row.Memo,
			Account:   row.Account,
			Debit:     debit,
			Credit:    credit,
			RatePrice: row.RatePrice,
		}},
	}
	return nil
}

// Close flushes the open group, if any.
func (b *Builder) Close() error {
	return b.flush()
}

// Balance returns the running balance of account.
func (b *Builder) Balance(account string) (decimal.Decimal, bool) {
	return b.balances.get(account)
}

// Accounts returns the number of accounts with a running balance.
func (b *Builder) Accounts() int {
	return b.balances.len()
}

// Flushed returns the number of groups written to the sink.
func (b *Builder) Flushed() int {
	return b.flushed
}

func (b *Builder) flush() error {
	if b.open == nil {
		return nil
	}
	g := *b.open
	b.open = nil

	id := ""
	if g.Entry != nil {
		id = g.Entry.TransactionID
	}
	b.log.Debug("transaction", "id", id, "splits", len(g.Splits))

	if err := b.sink.WriteGroup(g); err != nil {
		return fmt.Errorf("writing transaction %q: %w", id, err)
	}
	b.flushed++
	return nil
}

// delta is the signed change an amount makes to its account's balance.
func (b *Builder) delta(a amount.Amount) decimal.Decimal {
	d := a.Signed()
	if b.invert {
		return d.Neg()
	}
	return d
}

// sides splits an amount into its debit and credit cells.
func sides(a amount.Amount) (debit, credit *model.Money) {
	if a.IsBlank() {
		return nil, nil
	}
	m := a.Money()
	if a.Negative {
		return nil, &m
	}
	return &m, nil
}
