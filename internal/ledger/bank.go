package ledger

import "math"

// Bank owns an ordered collection of accounts.
//
// AddAccount transfers ownership: callers must not keep using an account
// after registering it.
type Bank struct {
	accounts []*Account
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{}
}

// AddAccount appends a to the bank. Duplicate IDs are not checked.
func (b *Bank) AddAccount(a *Account) {
	if a == nil {
		return
	}
	b.accounts = append(b.accounts, a)
}

// Len returns the number of registered accounts.
func (b *Bank) Len() int {
	return len(b.accounts)
}

// TotalBalance sums every account balance at the time of the call.
// Balances are never negative, so a sum past math.MaxInt64 saturates there.
func (b *Bank) TotalBalance() int64 {
	var total int64
	for _, a := range b.accounts {
		if a.balance > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += a.balance
	}
	return total
}

// Summary returns one Account.Summary line per account, in insertion order.
func (b *Bank) Summary() []string {
	lines := make([]string, 0, len(b.accounts))
	for _, a := range b.accounts {
		lines = append(lines, a.Summary())
	}
	return lines
}

// Accounts returns copies of the registered accounts in insertion order.
// Mutating a copy does not affect the bank.
func (b *Bank) Accounts() []Account {
	out := make([]Account, len(b.accounts))
	for i, a := range b.accounts {
		out[i] = *a
	}
	return out
}
