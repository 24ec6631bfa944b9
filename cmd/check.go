package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the ledger file consistency" }
func (*checkCmd) Usage() string {
	return `budget check

  Verifies ids and balances of the ledger. Nothing is repaired.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := OpenLedger().Check(); err != nil {
		var malformed *budget.MalformedRecordError
		if errors.As(err, &malformed) {
			return exitStatus(err)
		}
		fmt.Fprintf(os.Stderr, "Ledger %q is inconsistent:\n%v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Ledger %q is consistent.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
