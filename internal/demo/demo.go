// Package demo runs the configured deposit/withdraw scenario against a fresh
// bank and prints each step.
package demo

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cleared-dev/minibank/internal/config"
	"github.com/cleared-dev/minibank/internal/ledger"
)

// Run opens one account per configured entry, deposits then withdraws the
// scenario amounts on the first account, registers every account in a new
// bank and prints the summaries.
//
// A rejected deposit or withdrawal is printed to errOut as "Error: <msg>"
// and returned; nothing further is printed or registered.
func Run(out, errOut io.Writer, cfg *config.Config, log *zap.Logger) (*ledger.Bank, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	depositAmt, withdrawAmt, err := cfg.Amounts()
	if err != nil {
		return nil, err
	}

	accts := make([]*ledger.Account, len(cfg.Accounts))
	for i, ac := range cfg.Accounts {
		accts[i] = ledger.NewAccount(ac.ID, ac.Holder)
		log.Debug("opened account", zap.Int("account_id", ac.ID), zap.String("holder", ac.Holder))
	}
	first := accts[0]

	afterDeposit, err := first.Deposit(depositAmt)
	if err != nil {
		return nil, fail(errOut, log, "deposit", first, depositAmt, err)
	}
	log.Debug("deposit applied", zap.Int("account_id", first.ID()), zap.Int64("amount", depositAmt), zap.Int64("balance", afterDeposit))

	afterWithdraw, err := first.Withdraw(withdrawAmt)
	if err != nil {
		return nil, fail(errOut, log, "withdraw", first, withdrawAmt, err)
	}
	log.Debug("withdraw applied", zap.Int("account_id", first.ID()), zap.Int64("amount", withdrawAmt), zap.Int64("balance", afterWithdraw))

	p := &printer{w: out}
	p.printf("Your current balance : %d\n", afterDeposit)
	p.printf("Your current balance : %d\n", afterWithdraw)

	summary := first.Summary()
	bank := ledger.NewBank()
	// The bank owns the accounts from here on; only bank is read below.
	for _, a := range accts {
		bank.AddAccount(a)
	}

	p.printf("%q\n", summary)
	p.printf("[\n")
	for _, line := range bank.Summary() {
		p.printf("    %q,\n", line)
	}
	p.printf("]\n")
	p.printf("Total balance for all accounts in our bank is $%d\n", bank.TotalBalance())
	if p.err != nil {
		return nil, fmt.Errorf("writing output: %w", p.err)
	}

	log.Debug("scenario complete", zap.Int("accounts", bank.Len()), zap.Int64("total", bank.TotalBalance()))
	return bank, nil
}

// IsLedgerError reports whether err came from a rejected ledger operation,
// as opposed to config or output failures.
func IsLedgerError(err error) bool {
	var lerr *ledger.Error
	return errors.As(err, &lerr)
}

func fail(errOut io.Writer, log *zap.Logger, op string, a *ledger.Account, amt int64, err error) error {
	log.Warn(op+" rejected", zap.Int("account_id", a.ID()), zap.Int64("amount", amt), zap.Int64("balance", a.Balance()), zap.Error(err))
	if _, werr := fmt.Fprintf(errOut, "Error: %v\n", err); werr != nil {
		return errors.Join(err, fmt.Errorf("writing error: %w", werr))
	}
	return err
}

// printer remembers the first write error so the happy path stays flat.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
