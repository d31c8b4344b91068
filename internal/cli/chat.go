// Package cli implements the interactive terminal chat loop. It exercises
// the same dispatch path as the HTTP adapter, keeping the state client-side
// between turns exactly as a remote caller would.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fieldquote/fieldquote"
	"github.com/fieldquote/fieldquote/internal/presentation/tui"
	"github.com/fieldquote/fieldquote/pkg/domain"
)

// Chat runs the REPL until the conversation finalizes or the user quits.
func Chat(ctx context.Context, eng *fieldquote.Engine, in io.Reader, out io.Writer) error {
	render := tui.NewRenderer()
	reader := bufio.NewReader(in)

	phase := fieldquote.StartPhase
	c := eng.NewContext()
	settings := domain.Settings{}

	// Opening turn: empty input renders the greeting.
	input := ""

	for {
		res := eng.Dispatch(ctx, phase, c, input, settings)
		phase, c = res.Phase, res.Context

		msg, err := render(res.Message)
		if err != nil {
			msg = res.Message + "\n"
		}
		fmt.Fprint(out, msg)
		if len(res.QuickReplies) > 0 {
			fmt.Fprintf(out, "  [%s]\n", strings.Join(res.QuickReplies, " | "))
		}

		if res.IsComplete {
			fmt.Fprintln(out, "Quote complete. Type \"new quote\" to build another, or press Ctrl+D to exit.")
		}

		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(out, "\nBye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		input = strings.TrimSpace(line)
		if input == "exit" || input == "quit" {
			fmt.Fprintln(out, "Bye!")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
