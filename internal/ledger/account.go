package ledger

import (
	"fmt"
	"math"
)

const (
	msgNegativeDeposit = "Cannot deposit a negative amount"
	msgDepositOverflow = "Deposit would overflow the balance"
)

// Account is a named balance in integer minor units.
type Account struct {
	id      int
	holder  string
	balance int64
}

// NewAccount returns an account with a zero balance.
// Uniqueness of id is the caller's responsibility.
func NewAccount(id int, holder string) *Account {
	return &Account{id: id, holder: holder}
}

// ID returns the account identifier.
func (a *Account) ID() int { return a.id }

// Holder returns the account holder's display name.
func (a *Account) Holder() string { return a.holder }

// Balance returns the current balance.
func (a *Account) Balance() int64 { return a.balance }

// Deposit adds amount and returns the new balance.
// Negative amounts, and amounts that would overflow the balance, fail with
// KindInvalidAmount.
func (a *Account) Deposit(amount int64) (int64, error) {
	if amount < 0 {
		return 0, &Error{Kind: KindInvalidAmount, Message: msgNegativeDeposit}
	}
	if amount > math.MaxInt64-a.balance {
		return 0, &Error{Kind: KindInvalidAmount, Message: msgDepositOverflow}
	}
	a.balance += amount
	return a.balance, nil
}

// Withdraw subtracts amount and returns the new balance.
// Negative amounts and overdrafts both fail with KindInsufficientFunds.
func (a *Account) Withdraw(amount int64) (int64, error) {
	if amount < 0 || amount > a.balance {
		return 0, &Error{Kind: KindInsufficientFunds}
	}
	a.balance -= amount
	return a.balance, nil
}

// Summary returns "<holder> has a balance $<balance>".
func (a *Account) Summary() string {
	return fmt.Sprintf("%s has a balance $%d", a.holder, a.balance)
}
