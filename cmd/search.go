package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	by    string
	value string
}

func (*searchCmd) Name() string { return "search" }
func (*searchCmd) Synopsis() string {
	return "search for a transaction based on a category, date or amount"
}
func (*searchCmd) Usage() string {
	return `budget search [-by category|date|amount -value <value>]

  Lists the transactions matching the criterion, in ledger order.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "", "Criterion: category, date or amount")
	f.StringVar(&c.value, "value", "", "Searched value")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := budget.ParseFilter(c.by, c.value)
	if err != nil {
		return exitStatus(err)
	}
	txs, err := OpenLedger().Search(filter)
	if errors.Is(err, budget.ErrEmptyLedger) {
		fmt.Println(renderer.NoRecords)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(txs, *currency))
	return subcommands.ExitSuccess
}
