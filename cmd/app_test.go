package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

func TestApplyEnv(t *testing.T) {
	defer func(l, c string, v bool) { *ledgerFile, *currency, *Verbose = l, c, v }(*ledgerFile, *currency, *Verbose)

	t.Setenv(EnvLedgerFile, "/tmp/ledger.csv")
	t.Setenv(EnvCurrency, "EUR")
	t.Setenv(EnvVerbose, "true")
	if err := ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() unexpected error: %v", err)
	}
	if *ledgerFile != "/tmp/ledger.csv" || *currency != "EUR" || !*Verbose {
		t.Errorf("ApplyEnv() set ledger-file=%q currency=%q v=%v", *ledgerFile, *currency, *Verbose)
	}

	t.Setenv(EnvVerbose, "maybe")
	if err := ApplyEnv(); err == nil {
		t.Errorf("ApplyEnv() with %s=maybe want an error", EnvVerbose)
	}
}

func TestExitStatus(t *testing.T) {
	testCases := []struct {
		err  error
		want subcommands.ExitStatus
	}{
		{nil, subcommands.ExitSuccess},
		{&budget.InvalidInputError{Field: "amount", Value: "-1"}, subcommands.ExitUsageError},
		{fmt.Errorf("patch: %w", &budget.IDNotFoundError{ID: 3}), subcommands.ExitUsageError},
		{&budget.InvalidFilterError{Discriminator: "balance"}, subcommands.ExitUsageError},
		{&budget.MalformedRecordError{Line: 2, Err: errors.New("bad")}, subcommands.ExitFailure},
		{errors.New("disk full"), subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		if got := exitStatus(tc.err); got != tc.want {
			t.Errorf("exitStatus(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
