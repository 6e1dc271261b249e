// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	yamlTitle     = "info.yaml (yaml_version 6)"
	markdownTitle = "docs/info.md"
)

// Printer writes Outputs to a terminal. With colour off it writes plain
// text only, so its output can be piped.
type Printer struct {
	w     io.Writer
	color bool

	errStyle   lipgloss.Style
	titleStyle lipgloss.Style
	ruleStyle  lipgloss.Style
}

// NewPrinter returns a Printer writing to w. When color is true styles are
// always rendered, whatever w is connected to.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{
		w:     w,
		color: color,
		errStyle: r.NewStyle().
			Foreground(lipgloss.Color("9")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Padding(0, 1),
		titleStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ruleStyle:  r.NewStyle().Faint(true),
	}
}

// Print writes out: the error alone when the migration failed, otherwise the
// two documents under titled rules.
func (p *Printer) Print(out Output) error {
	if out.Failed {
		return p.PrintError(out.Err)
	}
	if err := p.section(yamlTitle, out.YAML); err != nil {
		return err
	}
	return p.section(markdownTitle, out.Markdown)
}

// PrintError writes msg in the error style.
func (p *Printer) PrintError(msg string) error {
	text := strings.TrimRight(msg, "\n")
	if p.color {
		text = p.errStyle.Render(text)
	} else {
		text = "error: " + text
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func (p *Printer) section(title, body string) error {
	head := "--- " + title + " ---"
	if p.color {
		head = p.ruleStyle.Render("---") + " " + p.titleStyle.Render(title) + " " + p.ruleStyle.Render("---")
	}
	if _, err := fmt.Fprintln(p.w, head); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, body)
	if err == nil && !strings.HasSuffix(body, "\n") {
		_, err = io.WriteString(p.w, "\n")
	}
	return err
}
