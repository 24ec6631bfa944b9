package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	date        string
	category    string
	amount      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction" }
func (*addCmd) Usage() string {
	return `budget add -d <DD.MM.YYYY> -c <category> -a <amount> [-m <description>]

  Appends a transaction at the end of the ledger, category is доход (income)
  or расход (expense).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (DD.MM.YYYY)")
	f.StringVar(&c.category, "c", "", "Category: доход or расход")
	f.StringVar(&c.amount, "a", "", "Amount, an unsigned number like 12.50")
	f.StringVar(&c.description, "m", "", "An optional description")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -a flags are required.")
		return subcommands.ExitUsageError
	}
	day, err := budget.ParseDate(c.date)
	if err != nil {
		return exitStatus(err)
	}
	category, err := budget.ParseCategory(c.category)
	if err != nil {
		return exitStatus(err)
	}
	amount, err := budget.ParseAmount(c.amount)
	if err != nil {
		return exitStatus(err)
	}
	description, err := budget.ParseDescription(c.description)
	if err != nil {
		return exitStatus(err)
	}

	ledger := OpenLedger()
	tx, err := ledger.Add(day, category, amount, description)
	if err != nil {
		return exitStatus(err)
	}
	fmt.Fprintf(os.Stderr, "✅ %s\n", renderer.Transaction(tx, *currency))

	txs, err := ledger.Transactions()
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(renderer.BalanceMarkdown(txs, *currency))
	return subcommands.ExitSuccess
}
