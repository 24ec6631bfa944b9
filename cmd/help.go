package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
)

type helpCmd struct{}

func (*helpCmd) Name() string     { return "help" }
func (*helpCmd) Synopsis() string { return "show documentation" }
func (*helpCmd) Usage() string {
	return `help [<topic>...]

  Show documentation for the given topics, "*" for all of them.
  Without topic, show the list of topics.
`
}

func (c *helpCmd) SetFlags(f *flag.FlagSet) {}

func (c *helpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.Topics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
