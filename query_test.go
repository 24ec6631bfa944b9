package budget

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLedger_Query(t *testing.T) {
	ledger := NewLedger(NewMemoryStore(threeRecords()...))

	testCases := []struct {
		path string
		want any
	}{
		{`$[?(@.category=="expense")].id`, []any{2.0, 3.0}},
		{`$[0].description`, "salary"},
		{`$[2].balance`, 50.0},
		{`$[*].date`, []any{"01.01.2024", "02.01.2024", "03.01.2024"}},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := ledger.Query(tc.path)
			if err != nil {
				t.Fatalf("Query() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Query() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := ledger.Query("$[?("); err == nil {
		t.Errorf("Query() with invalid path: want an error")
	}
}

func TestTransaction_MarshalJSON(t *testing.T) {
	tx := NewTx(2, "02.01.2024", Expense, "30", "", "-30")
	got, err := tx.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":2,"date":"02.01.2024","category":"expense","amount":30.00,"balance":-30.00}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
