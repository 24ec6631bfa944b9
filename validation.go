package budget

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the maximum number of characters in a description.
const MaxDescriptionLength = 64

var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// IsValidDate reports whether s is a DD.MM.YYYY date that exists in the calendar.
func IsValidDate(s string) bool {
	_, err := date.Parse(s)
	return err == nil
}

// IsValidAmount reports whether s is an unsigned integer or decimal number
// using '.' as separator.
func IsValidAmount(s string) bool { return amountPattern.MatchString(s) }

// IsValidCategory reports whether s, ignoring case, names Income or Expense.
func IsValidCategory(s string) bool {
	_, ok := lookupCategory(s)
	return ok
}

// IsValidDescription reports whether s fits in a ledger row.
func IsValidDescription(s string) bool { return descriptionProblem(s) == "" }

func descriptionProblem(s string) string {
	switch {
	case !utf8.ValidString(s):
		return "not valid UTF-8"
	case utf8.RuneCountInString(s) > MaxDescriptionLength:
		return "longer than 64 characters"
	case strings.ContainsAny(s, ",\""):
		return `must not contain ',' or '"'`
	case strings.ContainsAny(s, "\r\n"):
		return "must fit on one line"
	}
	return ""
}

// ParseDate parses a DD.MM.YYYY date.
func ParseDate(s string) (date.Date, error) {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, &InvalidInputError{Field: "date", Value: s, Reason: "want an existing DD.MM.YYYY date"}
	}
	return d, nil
}

// ParseAmount parses an unsigned decimal amount, rounded to 2 decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !IsValidAmount(s) {
		return decimal.Zero, &InvalidInputError{Field: "amount", Value: s, Reason: "want an unsigned number like 12 or 12.50"}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &InvalidInputError{Field: "amount", Value: s, Reason: err.Error()}
	}
	return d.Round(2), nil
}

// ParseCategory parses a category token, ignoring case.
func ParseCategory(s string) (Category, error) {
	c, ok := lookupCategory(s)
	if !ok {
		return 0, &InvalidInputError{Field: "category", Value: s, Reason: "want " + IncomeToken + " (income) or " + ExpenseToken + " (expense)"}
	}
	return c, nil
}

// ParseDescription checks that s can be stored as a description.
func ParseDescription(s string) (string, error) {
	if p := descriptionProblem(s); p != "" {
		return "", &InvalidInputError{Field: "description", Value: s, Reason: p}
	}
	return s, nil
}

// validate checks the fields a caller provides for a new or patched transaction.
func validate(tx Transaction) error {
	if tx.Date.IsZero() {
		return &InvalidInputError{Field: "date", Reason: "missing"}
	}
	if tx.Category != Income && tx.Category != Expense {
		return &InvalidInputError{Field: "category", Value: tx.Category.String(), Reason: "unknown category"}
	}
	if tx.Amount.IsNegative() {
		return &InvalidInputError{Field: "amount", Value: tx.Amount.String(), Reason: "must not be negative"}
	}
	if _, err := ParseDescription(tx.Description); err != nil {
		return err
	}
	return nil
}
