package budget

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// JSON returns the generic JSON view of txs: an array of objects with id,
// date, category, amount, description and balance keys.
func JSON(txs []Transaction) (any, error) {
	if txs == nil {
		txs = []Transaction{}
	}
	b, err := json.Marshal(txs)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Query evaluates a JSONPath expression over the JSON view of the ledger.
//
//	$[?(@.category=="expense")].amount
//	$[-1:].balance
func (l *Ledger) Query(path string) (any, error) {
	txs, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	v, err := JSON(txs)
	if err != nil {
		return nil, fmt.Errorf("could not build ledger json: %w", err)
	}
	result, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return result, nil
}
