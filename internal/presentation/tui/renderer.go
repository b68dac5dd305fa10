package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style picks light or dark automatically.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// RenderMarkdown writes markdown to w, through glamour when styled is set.
// Falls back to the raw text if rendering fails.
func RenderMarkdown(w io.Writer, markdown string, styled bool) error {
	if !styled {
		_, err := fmt.Fprint(w, markdown)
		return err
	}

	render, err := NewRenderer("")
	if err == nil {
		var out string
		if out, err = render(markdown); err == nil {
			_, err = fmt.Fprint(w, out)
			return err
		}
	}
	_, err = fmt.Fprint(w, markdown)
	return err
}
