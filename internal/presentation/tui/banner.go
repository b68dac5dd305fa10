package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner for collatz.
// It goes to w (usually stderr) so result lines on stdout stay clean.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"            _ _       _       ", "#818cf8"},
		{"   ___ ___ | | | __ _| |_ ____", "#a78bfa"},
		{"  / __/ _ \\| | |/ _` | __|_  /", "#c084fc"},
		{" | (_| (_) | | | (_| | |_ / / ", "#e879f9"},
		{"  \\___\\___/|_|_|\\__,_|\\__/___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
