package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dnafix/internal/record"
)

// Summary is what WriteSummary prints.
type Summary struct {
	Input   string
	Output  string
	Log     string
	Stats   record.Stats
	Tally   *Tally
	Elapsed string
}

// WriteSummary renders s as a bordered block. Colour follows the terminal
// capabilities of w; a plain writer gets no escape codes.
func WriteSummary(w io.Writer, s Summary) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	label := r.NewStyle().Width(16)
	warn := r.NewStyle().Foreground(lipgloss.Color("11"))
	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	var b strings.Builder
	row := func(k string, v any) {
		fmt.Fprintf(&b, "%s%v\n", label.Render(k), v)
	}
	b.WriteString(title.Render("dnafix summary") + "\n")
	row("input", s.Input)
	row("output", s.Output)
	if s.Log != "" {
		row("log", s.Log)
	}
	row("records", s.Stats.Records)
	row("fixed", s.Stats.Fixed)
	row("rejected", s.Stats.Rejected)
	if s.Elapsed != "" {
		row("elapsed", s.Elapsed)
	}
	if s.Tally != nil && s.Tally.Total() > 0 {
		b.WriteString(title.Render("diagnostics") + "\n")
		for _, c := range Classes {
			if n := s.Tally.Count(c); n > 0 {
				fmt.Fprintf(&b, "%s%s\n", label.Render(string(c)), warn.Render(fmt.Sprint(n)))
			}
		}
		row("total", s.Tally.Total())
	}
	_, err := fmt.Fprintln(w, box.Render(strings.TrimRight(b.String(), "\n")))
	return err
}
