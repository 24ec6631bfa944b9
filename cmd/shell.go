package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type shellCmd struct{}

func (*shellCmd) Name() string { return "shell" }
func (*shellCmd) Synopsis() string {
	return "interactive session with balance, add, patch and search"
}
func (*shellCmd) Usage() string {
	return `budget shell

  Starts an interactive session. Type help for the list of commands.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := NewShell(os.Stdin, os.Stdout, OpenLedger(), *currency)
	if err := s.Run(); err != nil {
		return exitStatus(err)
	}
	return subcommands.ExitSuccess
}

var shellCommands = []struct{ name, description string }{
	{"help", "list all commands and descriptions"},
	{"balance", "show your balance as well as your transactions"},
	{"add", "add a transaction"},
	{"patch", "change a transaction"},
	{"search", "search for a transaction based on a category, date or amount"},
	{"exit", "exit the shell"},
}

// Shell is an interactive session on a ledger.
//
// Commands ask for their arguments one at a time, asking again until the
// answer is valid. Input errors never end the session.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	ledger   *budget.Ledger
	currency string
}

// NewShell creates a shell reading commands from r and writing to w.
func NewShell(r io.Reader, w io.Writer, ledger *budget.Ledger, currency string) *Shell {
	return &Shell{
		in:       bufio.NewScanner(r),
		out:      w,
		ledger:   ledger,
		currency: currency,
	}
}

// Run reads and executes commands until "exit" or the end of the input.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, `Shell started! Type "help" for all commands`)
	for {
		line, err := s.read("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch line {
		case "":
		case "exit":
			return nil
		case "help":
			s.help()
		case "balance":
			err = s.balance()
		case "add":
			err = s.add()
		case "patch":
			err = s.patch()
		case "search":
			err = s.search()
		default:
			fmt.Fprintf(s.out, "unknown command %q, type \"help\" for all commands\n", line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var malformed *budget.MalformedRecordError
			if errors.As(err, &malformed) {
				return err
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// read prints prompt and returns the next input line, trimmed.
func (s *Shell) read(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask reads lines until parse accepts one.
func (s *Shell) ask(prompt string, parse func(string) error) error {
	for {
		line, err := s.read(prompt)
		if err != nil {
			return err
		}
		if err := parse(line); err != nil {
			fmt.Fprintf(s.out, "%v, try again\n", err)
			continue
		}
		return nil
	}
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "Available commands:")
	for _, c := range shellCommands {
		fmt.Fprintf(s.out, "  %-8s - %s\n", c.name, c.description)
	}
}

func (s *Shell) balance() error {
	txs, err := s.ledger.Transactions()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, renderer.BalanceMarkdown(txs, s.currency))
	return nil
}

func (s *Shell) add() error {
	var (
		day         date.Date
		category    budget.Category
		amount      decimal.Decimal
		description string
	)
	err := s.ask("date (DD.MM.YYYY): ", func(v string) (err error) {
		day, err = budget.ParseDate(v)
		return
	})
	if err != nil {
		return err
	}
	err = s.ask("category (доход or расход): ", func(v string) (err error) {
		category, err = budget.ParseCategory(v)
		return
	})
	if err != nil {
		return err
	}
	err = s.ask("amount: ", func(v string) (err error) {
		amount, err = budget.ParseAmount(v)
		return
	})
	if err != nil {
		return err
	}
	err = s.ask("description: ", func(v string) (err error) {
		description, err = budget.ParseDescription(v)
		return
	})
	if err != nil {
		return err
	}

	tx, err := s.ledger.Add(day, category, amount, description)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, renderer.Transaction(tx, s.currency))
	return s.balance()
}

func (s *Shell) patch() error {
	txs, err := s.ledger.Transactions()
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(s.out, renderer.NoRecords)
		return nil
	}

	var current budget.Transaction
	err = s.ask("id: ", func(v string) error {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid id %q", v)
		}
		for _, tx := range txs {
			if tx.ID == id {
				current = tx
				return nil
			}
		}
		return &budget.IDNotFoundError{ID: id}
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, renderer.Transaction(current, s.currency))
	fmt.Fprintln(s.out, "leave empty to keep the current value")

	var p budget.Patch
	err = s.ask(fmt.Sprintf("date [%s]: ", current.Date), func(v string) error {
		if v == "" {
			return nil
		}
		d, err := budget.ParseDate(v)
		if err != nil {
			return err
		}
		p.Date = &d
		return nil
	})
	if err != nil {
		return err
	}
	err = s.ask(fmt.Sprintf("category [%s]: ", current.Category), func(v string) error {
		if v == "" {
			return nil
		}
		c, err := budget.ParseCategory(v)
		if err != nil {
			return err
		}
		p.Category = &c
		return nil
	})
	if err != nil {
		return err
	}
	err = s.ask(fmt.Sprintf("amount [%s]: ", current.Amount.StringFixed(2)), func(v string) error {
		if v == "" {
			return nil
		}
		a, err := budget.ParseAmount(v)
		if err != nil {
			return err
		}
		p.Amount = &a
		return nil
	})
	if err != nil {
		return err
	}
	err = s.ask(fmt.Sprintf("description [%s]: ", current.Description), func(v string) error {
		if v == "" {
			return nil
		}
		d, err := budget.ParseDescription(v)
		if err != nil {
			return err
		}
		p.Description = &d
		return nil
	})
	if err != nil {
		return err
	}

	changed, err := s.ledger.Patch(current.ID, p)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(s.out, "nothing changed")
		return nil
	}
	fmt.Fprintf(s.out, "transaction %d changed\n", current.ID)
	return s.balance()
}

func (s *Shell) search() error {
	var by string
	err := s.ask("search by (category, date, amount): ", func(v string) error {
		if _, ok := budget.ParseCriterion(v); !ok || v == "" {
			return &budget.InvalidFilterError{Discriminator: v, Reason: "want category, date or amount"}
		}
		by = v
		return nil
	})
	if err != nil {
		return err
	}
	var filter budget.Filter
	err = s.ask("value: ", func(v string) (err error) {
		filter, err = budget.ParseFilter(by, v)
		return
	})
	if err != nil {
		return err
	}

	txs, err := s.ledger.Search(filter)
	if errors.Is(err, budget.ErrEmptyLedger) {
		fmt.Fprintln(s.out, renderer.NoRecords)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, renderer.TransactionsMarkdown(txs, s.currency))
	return nil
}
