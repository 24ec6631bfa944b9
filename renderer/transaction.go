package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction on a single line.
func Transaction(tx budget.Transaction, currency string) string {
	verb := "Earned"
	if tx.Category == budget.Expense {
		verb = "Spent"
	}
	s := "#" + strconv.Itoa(tx.ID) + " " + verb + " " + FormatMoney(tx.Amount, currency) + " on " + tx.Date.String()
	if tx.Description != "" {
		s += " (" + tx.Description + ")"
	}
	return s + ", balance " + FormatMoney(tx.Balance, currency)
}

// TransactionsMarkdown renders a table of transactions, in the given order.
func TransactionsMarkdown(txs []budget.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No matching transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignLeft, md.AlignRight,
		},
		Header: []string{"ID", "Date", "Category", "Amount", "Description", "Balance"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(tx.ID),
			tx.Date.String(),
			tx.Category.String(),
			FormatMoney(tx.Amount, currency),
			tx.Description,
			FormatMoney(tx.Balance, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
