package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type patchCmd struct {
	id int
	// values are read from the flag set, only the ones set are patched.
	date, category, amount, description string
}

func (*patchCmd) Name() string     { return "patch" }
func (*patchCmd) Synopsis() string { return "change a transaction" }
func (*patchCmd) Usage() string {
	return `budget patch -id <id> [-d <DD.MM.YYYY>] [-c <category>] [-a <amount>] [-m <description>]

  Changes the fields given as flags and recomputes the balances after it.
`
}

func (c *patchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to change (required)")
	f.StringVar(&c.date, "d", "", "New date (DD.MM.YYYY)")
	f.StringVar(&c.category, "c", "", "New category: доход or расход")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.description, "m", "", "New description, can be set to empty")
}

func (c *patchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	p, err := parsePatch(f)
	if err != nil {
		return exitStatus(err)
	}
	if p.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Error: at least one of -d, -c, -a or -m is required.")
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
	changed, err := ledger.Patch(c.id, p)
	if errors.Is(err, budget.ErrEmptyLedger) {
		fmt.Println(renderer.NoRecords)
		return subcommands.ExitFailure
	}
	if err != nil {
		return exitStatus(err)
	}
	if !changed {
		fmt.Fprintf(os.Stderr, "Transaction %d unchanged, nothing changed.\n", c.id)
	} else {
		fmt.Fprintf(os.Stderr, "✅ Transaction %d changed.\n", c.id)
	}

	txs, err := ledger.Transactions()
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(renderer.BalanceMarkdown(txs, *currency))
	return subcommands.ExitSuccess
}

// parsePatch builds a patch out of the flags explicitly set in f.
func parsePatch(f *flag.FlagSet) (budget.Patch, error) {
	var (
		p    budget.Patch
		errs error
	)
	f.Visit(func(fl *flag.Flag) {
		value := fl.Value.String()
		switch fl.Name {
		case "d":
			d, err := budget.ParseDate(value)
			errs = errors.Join(errs, err)
			p.Date = &d
		case "c":
			c, err := budget.ParseCategory(value)
			errs = errors.Join(errs, err)
			p.Category = &c
		case "a":
			a, err := budget.ParseAmount(value)
			errs = errors.Join(errs, err)
			p.Amount = &a
		case "m":
			m, err := budget.ParseDescription(value)
			errs = errors.Join(errs, err)
			p.Description = &m
		}
	})
	if errs != nil {
		return budget.Patch{}, errs
	}
	return p, nil
}
