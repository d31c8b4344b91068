// Package tui holds presentation helpers for the terminal chat client.
package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders assistant messages as
// markdown using glamour, auto-detecting light/dark backgrounds.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Dumb terminal: fall back to plain text.
		return func(markdown string) (string, error) {
			return markdown + "\n", nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
