package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string { return "balance" }
func (*balanceCmd) Synopsis() string {
	return "show your balance as well as your transactions"
}
func (*balanceCmd) Usage() string {
	return `budget balance

  Prints the total balance, then incomes and expenses side by side.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := OpenLedger().Transactions()
	if err != nil {
		return exitStatus(err)
	}
	if len(txs) == 0 {
		fmt.Println(renderer.NoRecords)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.BalanceMarkdown(txs, *currency))
	return subcommands.ExitSuccess
}
