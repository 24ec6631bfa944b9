package budget

import (
	"errors"
	"fmt"
)

// ErrEmptyLedger is returned by operations that need at least one record.
var ErrEmptyLedger = errors.New("no records")

// MalformedRecordError reports a ledger row that cannot be parsed.
type MalformedRecordError struct {
	Line int    // 1-based line number in the ledger file
	Row  string // raw row content
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d %q: %v", e.Line, e.Row, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// IDNotFoundError is returned when patching an id that is not in the ledger.
type IDNotFoundError struct {
	ID int
}

func (e *IDNotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}

// InvalidInputError reports a user value rejected by a validator.
type InvalidInputError struct {
	Field  string // date, category, amount or description
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// InvalidFilterError reports a search criterion that cannot be applied.
type InvalidFilterError struct {
	Discriminator string
	Value         string
	Reason        string
}

func (e *InvalidFilterError) Error() string {
	if e.Discriminator == "" {
		return fmt.Sprintf("invalid search: %s", e.Reason)
	}
	return fmt.Sprintf("invalid search by %s %q: %s", e.Discriminator, e.Value, e.Reason)
}
