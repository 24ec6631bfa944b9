package budget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Header is the first row of every ledger file.
const Header = "id,date,category,amount,description,balance"

const columns = 6

// DecodeTransactions reads a ledger file, header first, and returns its
// transactions in file order.
//
// An empty input is an empty ledger. Rows that cannot be parsed are reported
// as *MalformedRecordError.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSuffix(scanner.Text(), "\r")
		if line == 1 {
			if strings.TrimPrefix(row, "\ufeff") != Header {
				return nil, &MalformedRecordError{Line: line, Row: row, Err: fmt.Errorf("want header %q", Header)}
			}
			continue
		}
		if row == "" {
			continue // Skip empty lines
		}
		tx, err := decodeRow(row)
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Row: row, Err: err}
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return txs, nil
}

func decodeRow(row string) (Transaction, error) {
	fields := strings.Split(row, ",")
	if len(fields) != columns {
		return Transaction{}, fmt.Errorf("got %d columns, want %d", len(fields), columns)
	}
	var tx Transaction
	var err error

	if tx.ID, err = strconv.Atoi(fields[0]); err != nil {
		return Transaction{}, fmt.Errorf("invalid id: %w", err)
	}
	if tx.Date, err = date.Parse(fields[1]); err != nil {
		return Transaction{}, err
	}
	var ok bool
	if tx.Category, ok = lookupCategory(fields[2]); !ok {
		return Transaction{}, fmt.Errorf("unknown category %q", fields[2])
	}
	if tx.Amount, err = decimal.NewFromString(fields[3]); err != nil {
		return Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	if tx.Amount.IsNegative() {
		return Transaction{}, errors.New("negative amount")
	}
	tx.Amount = tx.Amount.Round(2)
	tx.Description = fields[4]
	if tx.Balance, err = decimal.NewFromString(fields[5]); err != nil {
		return Transaction{}, fmt.Errorf("invalid balance: %w", err)
	}
	tx.Balance = tx.Balance.Round(2)
	return tx, nil
}

// EncodeTransaction writes tx as a single ledger row, followed by a newline.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	row := strings.Join([]string{
		strconv.Itoa(tx.ID),
		tx.Date.String(),
		tx.Category.String(),
		tx.Amount.StringFixed(2),
		tx.Description,
		tx.Balance.StringFixed(2),
	}, ",")
	if _, err := io.WriteString(w, row+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes the header and then every transaction, in order.
func EncodeLedger(w io.Writer, txs []Transaction) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
