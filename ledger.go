package budget

import (
	"log/slog"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Ledger keeps the balance of every transaction in a Store consistent.
//
// In a Ledger transactions are always in insertion order and each balance is
// the balance before it plus its own signed amount.
type Ledger struct {
	store Store
	log   *slog.Logger
}

// NewLedger creates a ledger on top of store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, log: slog.Default()}
}

// WithLogger sets the logger used to trace ledger mutations and returns l.
func (l *Ledger) WithLogger(logger *slog.Logger) *Ledger {
	if logger != nil {
		l.log = logger
	}
	return l
}

// Transactions returns all the transactions, in insertion order.
func (l *Ledger) Transactions() ([]Transaction, error) {
	return l.store.Load()
}

// Add records a new transaction at the end of the ledger and returns it,
// with its id and balance set.
//
// The amount is rounded to 2 decimal places. No other transaction is touched.
func (l *Ledger) Add(on date.Date, category Category, amount decimal.Decimal, description string) (Transaction, error) {
	tx := Transaction{
		Date:        on,
		Category:    category,
		Amount:      amount.Round(2),
		Description: description,
	}
	if err := validate(tx); err != nil {
		return Transaction{}, err
	}

	txs, err := l.store.Load()
	if err != nil {
		return Transaction{}, err
	}

	prior := decimal.Zero
	if n := len(txs); n > 0 {
		prior = txs[n-1].Balance
	}
	tx.ID = nextID(txs)
	tx.Balance = nextBalance(prior, tx)

	if err := l.store.Append(tx); err != nil {
		return Transaction{}, err
	}
	l.log.Debug("transaction added", "id", tx.ID, "category", tx.Category.Name(), "amount", tx.Amount.StringFixed(2), "balance", tx.Balance.StringFixed(2))
	return tx, nil
}

// Patch holds replacement values for a transaction.
// A nil field keeps the current value.
type Patch struct {
	Date        *date.Date
	Category    *Category
	Amount      *decimal.Decimal
	Description *string
}

// IsEmpty reports whether p replaces no field at all.
func (p Patch) IsEmpty() bool {
	return p.Date == nil && p.Category == nil && p.Amount == nil && p.Description == nil
}

// apply returns a copy of tx with p's fields replaced.
func (p Patch) apply(tx Transaction) Transaction {
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Category != nil {
		tx.Category = *p.Category
	}
	if p.Amount != nil {
		tx.Amount = p.Amount.Round(2)
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	return tx
}

// Patch amends the transaction identified by id, then recomputes the balance
// of every transaction after it.
//
// It returns false, without writing anything, when the patched transaction
// is identical to the stored one. Earlier transactions are never changed,
// later ones only see their balance updated.
func (l *Ledger) Patch(id int, p Patch) (changed bool, err error) {
	txs, err := l.store.Load()
	if err != nil {
		return false, err
	}
	if len(txs) == 0 {
		return false, ErrEmptyLedger
	}
	k := indexOf(txs, id)
	if k < 0 {
		return false, &IDNotFoundError{ID: id}
	}

	candidate := p.apply(txs[k])
	if err := validate(candidate); err != nil {
		return false, err
	}
	prior := decimal.Zero
	if k > 0 {
		prior = txs[k-1].Balance
	}
	candidate.Balance = nextBalance(prior, candidate)

	if candidate.Equal(txs[k]) {
		l.log.Debug("patch is a no-op", "id", id)
		return false, nil
	}

	txs[k] = candidate
	cascade(txs, k+1)

	if err := l.store.Rewrite(txs); err != nil {
		return false, err
	}
	l.log.Debug("transaction patched", "id", id, "cascaded", len(txs)-k-1, "balance", txs[len(txs)-1].Balance.StringFixed(2))
	return true, nil
}

// cascade recomputes the balance of txs[from:] from the balance before it.
// Only balances change, each from its own amount and category.
func cascade(txs []Transaction, from int) {
	for j := max(from, 0); j < len(txs); j++ {
		prior := decimal.Zero
		if j > 0 {
			prior = txs[j-1].Balance
		}
		txs[j].Balance = nextBalance(prior, txs[j])
	}
}

// nextID returns the id following the greatest one in txs, 1 if empty.
// Hand edited files may not have increasing ids.
func nextID(txs []Transaction) int {
	id := 0
	for _, tx := range txs {
		id = max(id, tx.ID)
	}
	return id + 1
}

// indexOf returns the position of the transaction with this id, or -1.
func indexOf(txs []Transaction, id int) int {
	for i, tx := range txs {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

// Search returns the transactions accepted by f, in ledger order.
//
// It returns ErrEmptyLedger when there is no transaction at all, and an empty
// slice when nothing matches.
func (l *Ledger) Search(f Filter) ([]Transaction, error) {
	txs, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ErrEmptyLedger
	}
	found := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			found = append(found, tx)
		}
	}
	l.log.Debug("search", "by", f.Criterion().String(), "found", len(found))
	return found, nil
}
