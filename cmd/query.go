package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type queryCmd struct {
	compact bool
}

func (*queryCmd) Name() string { return "query" }
func (*queryCmd) Synopsis() string {
	return "extract data from the ledger with a JSONPath expression"
}
func (*queryCmd) Usage() string {
	return `budget query [-compact] <jsonpath>

  Evaluates a JSONPath expression over the ledger and prints the JSON result.

  budget query '$[?(@.category=="expense")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "compact", false, "print the result on a single line")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query expects exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	result, err := OpenLedger().Query(f.Arg(0))
	if err != nil {
		return exitStatus(err)
	}

	enc := json.NewEncoder(os.Stdout)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return exitStatus(err)
	}
	return subcommands.ExitSuccess
}
