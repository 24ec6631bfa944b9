// Package agent implements an AI assistant answering questions about the
// ledger, backed by Gemini.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	render func(string) string
}

// New creates a new Agent talking to expert. It writes to w (e.g., os.Stdout)
// and reads user input from r (e.g., os.Stdin). Answers are markdown, passed
// through render before being printed; a nil render prints them as is.
func New(w io.Writer, r io.Reader, expert *Expert, render func(string) string) *Agent {
	if render == nil {
		render = func(s string) string { return s }
	}
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: expert,
		render: render,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. prompts are sent
// first, as if the user typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Expert.chat == nil {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to budget assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		for _, part := range content.Parts {
			if part.Text != "" {
				fmt.Fprintln(a.w, a.render(part.Text))
			}
		}
	}
}
