package ledger

import "github.com/shopspring/decimal"

// balances maps full account names to running balances. An account is
// present iff a nonzero amount has been posted to it.
type balances struct {
	byAccount map[string]decimal.Decimal
}

func newBalances() *balances {
	return &balances{byAccount: make(map[string]decimal.Decimal)}
}

// post applies a signed delta to account and returns the new balance.
// The first post seeds the account with delta itself.
func (b *balances) post(account string, delta decimal.Decimal) decimal.Decimal {
	cur, ok := b.byAccount[account]
	if ok {
		cur = cur.Add(delta)
	} else {
		cur = delta
	}
	b.byAccount[account] = cur
	return cur
}

func (b *balances) get(account string) (decimal.Decimal, bool) {
	v, ok := b.byAccount[account]
	return v, ok
}

func (b *balances) len() int {
	return len(b.byAccount)
}
