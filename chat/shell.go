package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const banner = `
 __  __  ____ ____  _     _       _
|  \/  |/ ___|  _ \| |   (_)_ __ | | __
| |\/| | |   | |_) | |   | | '_ \| |/ /
| |  | | |___|  __/| |___| | | | |   <
|_|  |_|\____|_|   |_____|_|_| |_|_|\_\
`

const prompt = "query> "

// TurnRunner resolves one user query to an answer. *Orchestrator
// satisfies it.
type TurnRunner interface {
	RunTurn(ctx context.Context, query string) (string, error)
}

// Shell is the interactive read-print loop. Queries are resolved one at
// a time; a turn error is printed and the loop continues.
type Shell struct {
	runner TurnRunner
	in     io.Reader
	out    io.Writer
}

// NewShell creates a Shell reading queries from in and printing to out.
func NewShell(runner TurnRunner, in io.Reader, out io.Writer) *Shell {
	return &Shell{runner: runner, in: in, out: out}
}

// Run loops until the user types "quit" or input ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprint(s.out, banner)
	fmt.Fprintln(s.out, "MCP client started. Type 'quit' to exit.")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			fmt.Fprintln(s.out, "Goodbye!")
			break
		}

		answer, err := s.runner.RunTurn(ctx, query)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if answer == "" {
			answer = "(no answer)"
		}
		fmt.Fprintln(s.out, answer)
	}
	return scanner.Err()
}
