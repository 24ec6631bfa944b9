// Package budget implements a personal income and expense ledger stored in a
// flat CSV file.
//
// Every transaction carries the running balance of the ledger, that is the
// sum of the signed amounts (positive for an income, negative for an expense)
// of all transactions up to and including it, in insertion order.
//
// The Ledger type keeps that property across its operations:
//   - Add appends a transaction, computing its id and balance from the last one.
//   - Patch amends a transaction in place and recomputes the balance of every
//     transaction after it.
//   - Search returns the transactions matching a Filter, in ledger order.
//
// Storage is abstracted by the Store interface, FileStore being the CSV
// implementation used by the budget command-line tool.
package budget
