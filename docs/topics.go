// Package docs holds the help topics of the budget command, as embedded
// markdown files.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Entry is a topic listed in the readme, with its one line description.
type Entry struct {
	Name        string
	Description string
}

// a readme line like "* add: add a transaction"
var entryPattern = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Index returns the topics listed in the readme, in readme order.
func Index() ([]Entry, error) {
	readme, err := Topic("readme")
	if err != nil {
		return nil, err
	}
	var entries []Entry
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		m := entryPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		entries = append(entries, Entry{Name: strings.TrimSpace(m[1]), Description: strings.TrimSpace(m[2])})
	}
	return entries, scanner.Err()
}

// Topic returns the markdown content of a topic. "*" stands for all topics.
func Topic(name string) (string, error) {
	if name == "*" {
		names, err := Names()
		if err != nil {
			return "", err
		}
		return Topics(names...)
	}

	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns several topics concatenated.
func Topics(names ...string) (string, error) {
	var b bytes.Buffer
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Names returns the sorted names of all topics but the readme.
func Names() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".md")
		if name != "readme" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
