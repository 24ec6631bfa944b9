// Package cmd implements the CLI application to manage a budget ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&helpCmd{}, "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&balanceCmd{}, "ledger")
	c.Register(&addCmd{}, "ledger")
	c.Register(&patchCmd{}, "ledger")
	c.Register(&searchCmd{}, "ledger")
	c.Register(&checkCmd{}, "ledger")
	c.Register(&queryCmd{}, "ledger")

	c.Register(&shellCmd{}, "interactive")
	c.Register(&assistCmd{}, "interactive")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "database.csv", "Path to the ledger file (CSV format)")
	currency   = flag.String("currency", "", "ISO 4217 currency code used to display amounts")
	Verbose    = flag.Bool("v", false, "verbose logging")
)

// Environment variables holding the global flags default values.
// They are also how global flags are passed to extensions.
const (
	EnvLedgerFile = "BUDGET_LEDGER_FILE"
	EnvCurrency   = "BUDGET_CURRENCY"
	EnvVerbose    = "BUDGET_VERBOSE"
)

// ApplyEnv sets the global flags from their environment variables.
// It must be called before flag.Parse so that the command line takes precedence.
func ApplyEnv() error {
	for _, v := range []struct{ flag, env string }{
		{"ledger-file", EnvLedgerFile},
		{"currency", EnvCurrency},
		{"v", EnvVerbose},
	} {
		value := os.Getenv(v.env)
		if value == "" {
			continue
		}
		if err := flag.Set(v.flag, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", v.env, value, err)
		}
	}
	return nil
}

// SetupLogging installs the default logger, on stderr. Debug messages are
// only shown in verbose mode.
func SetupLogging() {
	level := slog.LevelWarn
	if *Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// OpenLedger opens the ledger file selected by the global flags.
func OpenLedger() *budget.Ledger {
	return budget.NewLedger(budget.NewFileStore(*ledgerFile)).
		WithLogger(slog.Default().With("ledger", *ledgerFile))
}

// renderMarkdown renders md for the terminal, it returns md unchanged if it
// cannot.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}

// exitStatus reports err to the user and returns the matching exit status.
// Errors due to the user input are usage errors.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if isUserError(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// isUserError reports whether err can be fixed by typing another value.
func isUserError(err error) bool {
	var (
		input    *budget.InvalidInputError
		filter   *budget.InvalidFilterError
		notFound *budget.IDNotFoundError
	)
	return errors.As(err, &input) || errors.As(err, &filter) || errors.As(err, &notFound)
}
