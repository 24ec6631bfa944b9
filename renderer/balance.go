package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// NoRecords is the rendering of an empty ledger.
const NoRecords = "no records"

// BalanceMarkdown renders the ledger total balance followed by incomes and
// expenses side by side: the n-th income is on the same row as the n-th
// expense.
func BalanceMarkdown(txs []budget.Transaction, currency string) string {
	if len(txs) == 0 {
		return NoRecords
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balance")
	total := txs[len(txs)-1].Balance
	doc.PlainText(fmt.Sprintf("Total balance: %s", md.Bold(FormatMoney(total, currency))))

	var incomes, expenses []budget.Transaction
	for _, tx := range txs {
		if tx.Category == budget.Income {
			incomes = append(incomes, tx)
		} else {
			expenses = append(expenses, tx)
		}
	}

	cells := func(list []budget.Transaction, i int) []string {
		if i >= len(list) {
			return []string{"", "", ""}
		}
		tx := list[i]
		return []string{tx.Date.String(), FormatMoney(tx.Amount, currency), tx.Description}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignLeft,
			md.AlignLeft, md.AlignRight, md.AlignLeft,
		},
		Header: []string{
			"Income", "Amount", "Description",
			"Expense", "Amount", "Description",
		},
	}
	for i := range max(len(incomes), len(expenses)) {
		table.Rows = append(table.Rows, append(cells(incomes, i), cells(expenses, i)...))
	}
	doc.Table(table)

	return doc.String()
}
