package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script needs a unix shell")
	}
	defer func(l, c string, v bool) { *ledgerFile, *currency, *Verbose = l, c, v }(*ledgerFile, *currency, *Verbose)

	tempDir := t.TempDir()
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	// budget-hello writes the environment it received in the file given as
	// first argument.
	script := `#!/bin/sh
{
echo "` + EnvLedgerFile + `=$` + EnvLedgerFile + `"
echo "` + EnvCurrency + `=$` + EnvCurrency + `"
echo "` + EnvVerbose + `=$` + EnvVerbose + `"
} > "$1"
exit 3
`
	if err := os.WriteFile(filepath.Join(tempDir, "budget-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	*ledgerFile = filepath.Join(tempDir, "random_ledger.csv")
	*currency = "XYZ"
	*Verbose = true

	out := filepath.Join(tempDir, "env.txt")
	found, code := RunExtension("hello", []string{out})
	if !found {
		t.Fatal("RunExtension(hello) did not find budget-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension(hello) exit code = %d, want 3", code)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		EnvLedgerFile + "=" + *ledgerFile,
		EnvCurrency + "=XYZ",
		EnvVerbose + "=true",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("extension environment does not contain %q:\n%s", want, content)
		}
	}

	if found, _ := RunExtension("nope", nil); found {
		t.Error("RunExtension(nope) found a missing extension")
	}
}
