// Package ui renders batch results for terminal output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Row is one merge outcome.
type Row struct {
	Pair   string
	Status string
	Result string
	Failed bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// RenderTable lays rows out in aligned columns. Styling degrades to plain
// text when the terminal does not support color; width math uses rune widths
// so type renderings with wide characters stay aligned.
func RenderTable(rows []Row, colorize bool) string {
	if len(rows) == 0 {
		return dim("no pairs", colorize) + "\n"
	}
	pairWidth := runewidth.StringWidth("PAIR")
	statusWidth := runewidth.StringWidth("STATUS")
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Pair); w > pairWidth {
			pairWidth = w
		}
		if w := runewidth.StringWidth(r.Status); w > statusWidth {
			statusWidth = w
		}
	}

	var sb strings.Builder
	writeRow := func(pair, status, result string, style func(string) string) {
		sb.WriteString(pad(pair, pairWidth))
		sb.WriteString("  ")
		sb.WriteString(style(pad(status, statusWidth)))
		sb.WriteString("  ")
		sb.WriteString(result)
		sb.WriteByte('\n')
	}
	header := func(s string) string {
		if colorize {
			return headerStyle.Render(s)
		}
		return s
	}
	writeRow("PAIR", "STATUS", "RESULT", header)
	for _, r := range rows {
		style := func(s string) string {
			if !colorize {
				return s
			}
			if r.Failed {
				return failStyle.Render(s)
			}
			return okStyle.Render(s)
		}
		writeRow(r.Pair, r.Status, r.Result, style)
	}
	return sb.String()
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func dim(s string, colorize bool) string {
	if colorize {
		return dimStyle.Render(s)
	}
	return s
}
