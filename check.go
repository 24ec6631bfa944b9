package budget

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Check verifies that txs form a valid ledger: positive unique ids, amounts
// and balances rounded to the cent, and every balance equal to the previous
// one plus the transaction signed amount.
//
// All violations are reported. Nothing is repaired.
func Check(txs []Transaction) error {
	var errs error
	seen := make(map[int]bool, len(txs))
	prior := decimal.Zero
	for i, tx := range txs {
		if tx.ID <= 0 {
			errs = errors.Join(errs, fmt.Errorf("row %d: id %d is not positive", i+1, tx.ID))
		}
		if seen[tx.ID] {
			errs = errors.Join(errs, fmt.Errorf("row %d: duplicate id %d", i+1, tx.ID))
		}
		seen[tx.ID] = true

		if tx.Amount.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("transaction %d: negative amount %s", tx.ID, tx.Amount))
		}
		if !tx.Amount.Equal(tx.Amount.Round(2)) {
			errs = errors.Join(errs, fmt.Errorf("transaction %d: amount %s has more than 2 decimals", tx.ID, tx.Amount))
		}
		if want := nextBalance(prior, tx); !tx.Balance.Equal(want) {
			errs = errors.Join(errs, fmt.Errorf("transaction %d: balance is %s, want %s", tx.ID, tx.Balance.StringFixed(2), want.StringFixed(2)))
		}
		// keep checking against the recorded balance, so that a single
		// wrong balance is reported once.
		prior = tx.Balance
	}
	return errs
}

// Check verifies the stored ledger, see Check.
func (l *Ledger) Check() error {
	txs, err := l.store.Load()
	if err != nil {
		return err
	}
	return Check(txs)
}
