// Command budget keeps a personal ledger of incomes and expenses.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])

	// .env values never override the actual environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env file: %v\n", err)
	}
	if err := cmd.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	// exits when invoked by the shell for completion.
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)
	flag.Parse()
	cmd.SetupLogging()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a builtin command.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	categories := predict.Set{"доход", "расход"}
	fields := map[string]complete.Predictor{
		"d": predict.Nothing,
		"c": categories,
		"a": predict.Nothing,
		"m": predict.Nothing,
	}
	patch := map[string]complete.Predictor{"id": predict.Nothing}
	for k, v := range fields {
		patch[k] = v
	}

	topics, _ := docs.Names()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"currency":    predict.Set{"EUR", "USD", "GBP", "RUB"},
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"help":    {Args: predict.Set(topics)},
			"balance": {},
			"add":     {Flags: fields},
			"patch":   {Flags: patch},
			"search": {Flags: map[string]complete.Predictor{
				"by":    predict.Set{"category", "date", "amount"},
				"value": predict.Nothing,
			}},
			"check":  {},
			"query":  {Flags: map[string]complete.Predictor{"compact": predict.Nothing}},
			"shell":  {},
			"assist": {},
		},
	}
}
