package budget

import (
	"strings"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Criterion selects which transaction field a Filter looks at.
type Criterion int

const (
	// ByNothing accepts every transaction.
	ByNothing Criterion = iota
	ByCategory
	ByDate
	ByAmount
)

func (c Criterion) String() string {
	switch c {
	case ByCategory:
		return "category"
	case ByDate:
		return "date"
	case ByAmount:
		return "amount"
	default:
		return ""
	}
}

// ParseCriterion parses a search discriminator. The empty string is ByNothing.
func ParseCriterion(s string) (Criterion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ByNothing, true
	case "category", "категория":
		return ByCategory, true
	case "date", "дата":
		return ByDate, true
	case "amount", "сумма":
		return ByAmount, true
	default:
		return ByNothing, false
	}
}

// Filter selects transactions on a single criterion.
// Its zero value accepts all transactions.
type Filter struct {
	by       Criterion
	category Category
	date     date.Date
	amount   decimal.Decimal
}

// AcceptAll is the Filter that accepts every transaction.
var AcceptAll = Filter{}

// FilterCategory accepts transactions of category c.
func FilterCategory(c Category) Filter { return Filter{by: ByCategory, category: c} }

// FilterDate accepts transactions recorded on d.
func FilterDate(d date.Date) Filter { return Filter{by: ByDate, date: d} }

// FilterAmount accepts transactions whose amount (not balance) is exactly a.
func FilterAmount(a decimal.Decimal) Filter { return Filter{by: ByAmount, amount: a} }

// Criterion returns the field f looks at.
func (f Filter) Criterion() Criterion { return f.by }

// ParseFilter builds a Filter from a discriminator and its value.
//
// Both empty means no criterion. Any other combination that does not name a
// known discriminator with a value accepted by its validator is an
// *InvalidFilterError.
func ParseFilter(discriminator, value string) (Filter, error) {
	by, ok := ParseCriterion(discriminator)
	if !ok {
		return Filter{}, &InvalidFilterError{Discriminator: discriminator, Value: value, Reason: "want category, date or amount"}
	}
	invalid := func(reason string) error {
		return &InvalidFilterError{Discriminator: by.String(), Value: value, Reason: reason}
	}
	switch by {
	case ByCategory:
		c, ok := lookupCategory(value)
		if !ok {
			return Filter{}, invalid("unknown category")
		}
		return FilterCategory(c), nil
	case ByDate:
		d, err := date.Parse(value)
		if err != nil {
			return Filter{}, invalid("want an existing DD.MM.YYYY date")
		}
		return FilterDate(d), nil
	case ByAmount:
		// not rounded: 30.004 is not the amount 30.00.
		if !IsValidAmount(value) {
			return Filter{}, invalid("want an unsigned number like 12 or 12.50")
		}
		a, err := decimal.NewFromString(value)
		if err != nil {
			return Filter{}, invalid(err.Error())
		}
		return FilterAmount(a), nil
	default:
		if value != "" {
			return Filter{}, &InvalidFilterError{Value: value, Reason: "a value needs a category, date or amount criterion"}
		}
		return AcceptAll, nil
	}
}

// Match reports whether tx is accepted by f.
func (f Filter) Match(tx Transaction) bool {
	switch f.by {
	case ByCategory:
		return tx.Category == f.category
	case ByDate:
		return tx.Date == f.date
	case ByAmount:
		return tx.Amount.Equal(f.amount)
	default:
		return true
	}
}
