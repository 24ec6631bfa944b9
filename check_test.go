package budget

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	testCases := []struct {
		name    string
		txs     []Transaction
		wantErr []string // substrings expected in the error, none means valid
	}{
		{
			name: "empty",
		},
		{
			name: "valid",
			txs:  threeRecords(),
		},
		{
			name: "broken chain",
			txs: []Transaction{
				NewTx(1, "01.01.2024", Income, "100.00", "", "100.00"),
				NewTx(2, "02.01.2024", Expense, "30.00", "", "80.00"),
				NewTx(3, "03.01.2024", Expense, "20.00", "", "60.00"),
			},
			wantErr: []string{"transaction 2: balance is 80.00, want 70.00"},
		},
		{
			name: "duplicate and non positive ids",
			txs: []Transaction{
				NewTx(0, "01.01.2024", Income, "1.00", "", "1.00"),
				NewTx(0, "01.01.2024", Income, "1.00", "", "2.00"),
			},
			wantErr: []string{"id 0 is not positive", "duplicate id 0"},
		},
		{
			name: "unrounded amount",
			txs: []Transaction{
				NewTx(1, "01.01.2024", Income, "1.005", "", "1.01"),
			},
			wantErr: []string{"more than 2 decimals"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.txs)
			if len(tc.wantErr) == 0 {
				if err != nil {
					t.Errorf("Check() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() = nil, want errors %q", tc.wantErr)
			}
			for _, want := range tc.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Check() error %q does not contain %q", err, want)
				}
			}
		})
	}
}

func TestLedger_Check(t *testing.T) {
	good := NewLedger(NewMemoryStore(
		NewTx(1, "01.01.2024", Income, "100.00", "salary", "100.00"),
		NewTx(2, "02.01.2024", Expense, "30.00", "food", "70.00"),
	))
	if err := good.Check(); err != nil {
		t.Errorf("Check() unexpected error: %v", err)
	}

	broken := NewLedger(NewMemoryStore(
		NewTx(1, "01.01.2024", Income, "100.00", "salary", "100.00"),
		NewTx(2, "02.01.2024", Expense, "30.00", "food", "75.00"),
	))
	if err := broken.Check(); err == nil {
		t.Error("Check() = nil on a broken balance chain")
	}
}
