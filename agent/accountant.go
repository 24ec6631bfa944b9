package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/docs"
	"github.com/etnz/budget/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAccountant returns the expert in charge of reading the user's ledger.
func NewAccountant(ledger *budget.Ledger, currency string) *Expert {
	lib := Tools(ledger, currency)
	return &Expert{
		Name:      "Accountant",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: Declarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's personal budget ledger.
				The ledger records incomes and expenses, each one with the running balance.
				Use the available tools to answer:
				  - the current balance and all transactions
				  - transactions of a category, on a date, or of an amount
				  - any aggregate you can express as a JSONPath query
				Answer in the user's language. Amounts have two decimals.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions giving read access to the ledger.
func Tools(ledger *budget.Ledger, currency string) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Balance",
				Description: "Balance returns the total balance and the list of incomes and expenses, as markdown.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown document with the total balance and a table of incomes and expenses.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				txs, err := ledger.Transactions()
				if err != nil {
					return "", err
				}
				return renderer.BalanceMarkdown(txs, currency), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Search",
				Description: "Search lists the transactions matching a criterion, in the order they were recorded.\n\n" + must(docs.Topic("search")),
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"by": {
							Type:        genai.TypeString,
							Description: "The criterion: category, date or amount. Empty to list everything.",
						},
						"value": {
							Type:        genai.TypeString,
							Description: "The searched value, a category (доход or расход), a DD.MM.YYYY date, or an amount.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the matching transactions.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				by, err := stringArg(args, "by")
				if err != nil {
					return "", err
				}
				value, err := stringArg(args, "value")
				if err != nil {
					return "", err
				}
				filter, err := budget.ParseFilter(by, value)
				if err != nil {
					return "", err
				}
				txs, err := ledger.Search(filter)
				if errors.Is(err, budget.ErrEmptyLedger) {
					return renderer.NoRecords, nil
				}
				if err != nil {
					return "", err
				}
				return renderer.TransactionsMarkdown(txs, currency), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Query",
				Description: "Query evaluates a JSONPath expression over the ledger.\n\n" + must(docs.Topic("query")),
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"path": {
							Type:        genai.TypeString,
							Description: "The JSONPath expression, for instance $[?(@.category==\"expense\")].amount",
						},
					},
					Required: []string{"path"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The JSON encoded result.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				path, err := stringArg(args, "path")
				if err != nil {
					return "", err
				}
				v, err := ledger.Query(path)
				if err != nil {
					return "", err
				}
				b, err := json.Marshal(v)
				if err != nil {
					return "", err
				}
				return string(b), nil
			},
		},
	}
}

// stringArg returns an optional string argument.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
