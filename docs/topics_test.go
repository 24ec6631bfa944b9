package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup = "bash setup"
	bashRun   = "bash run"
	bashCheck = "bash check"
)

func TestIndex(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic file is
	// listed in readme.md.
	entries, err := Index()
	if err != nil {
		t.Fatalf("Index() unexpected error: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("Index() found no topic in readme.md")
	}

	listed := make(map[string]bool)
	for _, e := range entries {
		listed[e.Name] = true
		if e.Description == "" {
			t.Errorf("topic %q has no description in readme.md", e.Name)
		}
		if _, err := Topic(e.Name); err != nil {
			t.Errorf("failed to get topic %q: %v", e.Name, err)
		}
	}

	names, err := Names()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if !listed[name] {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopic_NotFound(t *testing.T) {
	if _, err := Topic("nope"); err == nil {
		t.Error("Topic(\"nope\") want an error")
	}
}

func TestTopic_All(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"# add", "# patch", "# search"} {
		if !strings.Contains(all, heading) {
			t.Errorf("Topic(\"*\") is missing %q", heading)
		}
	}
}

// TestCodeBlocks runs the shell scenarios written in the topics against a
// freshly built budget binary.
func TestCodeBlocks(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash is required to run documentation scenarios")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	bin := buildBudget(t, t.TempDir())
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, bin, file)
		})
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildBudget builds the budget executable in tmp and returns its path.
func buildBudget(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "budget")
	buildCmd := exec.Command("go", "build", "-o", output, "../budget/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build budget command: %v\n%s", err, out)
	}
	return output
}

// parseMarkdown parses a markdown file and returns its scenario blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		switch lang {
		case bashSetup, bashRun, bashCheck:
		default:
			return ast.WalkContinue, nil
		}

		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: blockContent.String(),
			File:    file,
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})

	return blocks
}

// lineNumber computes the line number of an offset in source.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// runBlocks executes the scenario of a markdown file, each setup block
// starting in a new empty folder.
func runBlocks(t *testing.T, bin, file string) {
	t.Helper()

	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}

	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH")),
		"BUDGET_LEDGER_FILE=database.csv",
		"BUDGET_CURRENCY=",
	)
	dir := t.TempDir()
	for _, block := range blocks {
		if block.Type == bashSetup {
			dir = t.TempDir()
		}
		cmd := exec.Command("bash", "-c", "set -e; "+block.Content)
		cmd.Dir = dir
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		if err == nil {
			continue
		}
		if block.Type == bashCheck {
			t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
			continue
		}
		t.Fatalf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
	}
}
