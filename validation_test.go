package budget

import (
	"errors"
	"strings"
	"testing"
)

func TestIsValidDate(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"01.01.2024", true},
		{"29.02.2024", true},
		{"31.12.2023", true},
		{"30.02.2024", false},
		{"32.01.2024", false},
		{"01.13.2024", false},
		{"00.10.2024", false},
		{"1.1.2024", false},
		{"2024-01-01", false},
		{"01/01/2024", false},
		{"", false},
		{"abc", false},
	}
	for _, tc := range testCases {
		if got := IsValidDate(tc.input); got != tc.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"100", true},
		{"100.5", true},
		{"100.50", true},
		{"0.001", true},
		{"+5", false},
		{"-5", false},
		{"1,5", false},
		{"1 000", false},
		{"1e3", false},
		{"1.", false},
		{".5", false},
		{"1.2.3", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsValidAmount(tc.input); got != tc.want {
			t.Errorf("IsValidAmount(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidCategory(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"доход", true},
		{"Доход", true},
		{"РАСХОД", true},
		{"income", true},
		{"Expense", true},
		{" доход", false},
		{"salary", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsValidCategory(tc.input); got != tc.want {
			t.Errorf("IsValidCategory(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidDescription(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"salary", true},
		{strings.Repeat("я", 64), true},
		{strings.Repeat("a", 65), false},
		{"food, drinks", false},
		{`say "hi"`, false},
		{"two\nlines", false},
	}
	for _, tc := range testCases {
		if got := IsValidDescription(tc.input); got != tc.want {
			t.Errorf("IsValidDescription(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"100", "100.00"},
		{"0.1", "0.10"},
		{"2.345", "2.35"},
		{"2.344", "2.34"},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.input)
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
		}
		if got.StringFixed(2) != tc.want || !got.Equal(D(tc.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParse_InvalidInputError(t *testing.T) {
	testCases := []struct {
		field string
		parse func() error
	}{
		{"date", func() error { _, err := ParseDate("30.02.2024"); return err }},
		{"amount", func() error { _, err := ParseAmount("-1"); return err }},
		{"category", func() error { _, err := ParseCategory("gift"); return err }},
		{"description", func() error { _, err := ParseDescription("a,b"); return err }},
	}
	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			err := tc.parse()
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("got error %v, want *InvalidInputError", err)
			}
			if inputErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", inputErr.Field, tc.field)
			}
		})
	}
}
