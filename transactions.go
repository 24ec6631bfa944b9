package budget

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Category tells whether a transaction brings money in or takes it out.
type Category int

const (
	// Income credits the ledger.
	Income Category = iota + 1
	// Expense debits the ledger.
	Expense
)

// Tokens persisted in the ledger file.
const (
	IncomeToken  = "доход"
	ExpenseToken = "расход"
)

// String returns the token used to persist the category.
func (c Category) String() string {
	switch c {
	case Income:
		return IncomeToken
	case Expense:
		return ExpenseToken
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Name returns the english name of the category, as used in JSON.
func (c Category) Name() string {
	switch c {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return ""
	}
}

// lookupCategory resolves a case-normalized category token.
func lookupCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case IncomeToken, "income":
		return Income, true
	case ExpenseToken, "expense":
		return Expense, true
	default:
		return 0, false
	}
}

// Transaction is a single ledger record.
//
// Balance is the sum of the signed amounts of this transaction and all the
// ones before it in the ledger.
type Transaction struct {
	ID          int
	Date        date.Date
	Category    Category
	Amount      decimal.Decimal // always positive, 2 decimal places
	Description string
	Balance     decimal.Decimal
}

// SignedAmount returns +Amount for an income and -Amount for an expense.
func (tx Transaction) SignedAmount() decimal.Decimal {
	if tx.Category == Expense {
		return tx.Amount.Neg()
	}
	return tx.Amount
}

// Equal reports whether tx and x hold the same values, field by field.
func (tx Transaction) Equal(x Transaction) bool {
	return tx.ID == x.ID &&
		tx.Date == x.Date &&
		tx.Category == x.Category &&
		tx.Amount.Equal(x.Amount) &&
		tx.Description == x.Description &&
		tx.Balance.Equal(x.Balance)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var o orderedObject
	o.Set("id", tx.ID)
	o.Set("date", tx.Date)
	o.Set("category", tx.Category.Name())
	o.Set("amount", json.Number(tx.Amount.StringFixed(2)))
	o.SetString("description", tx.Description)
	o.Set("balance", json.Number(tx.Balance.StringFixed(2)))
	return o.MarshalJSON()
}

// nextBalance returns the balance of tx when recorded right after a
// transaction whose balance is prior.
func nextBalance(prior decimal.Decimal, tx Transaction) decimal.Decimal {
	return prior.Add(tx.SignedAmount()).Round(2)
}
