package budget

import (
	"github.com/etnz/budget/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

// compareOpts lets cmp compare decimals by value and dates by day.
var compareOpts = cmp.Options{
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// D is a helper for test to create a decimal from a const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// NewTx is a helper for test to create a fully populated transaction.
func NewTx(id int, on string, c Category, amount, description, balance string) Transaction {
	return Transaction{
		ID:          id,
		Date:        date.MustParse(on),
		Category:    c,
		Amount:      D(amount),
		Description: description,
		Balance:     D(balance),
	}
}

func ptr[T any](v T) *T { return &v }
