package render

import (
	"fmt"
	"io"
	"strings"

	"argtab/internal/argtable"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	negatedStyle = lipgloss.NewStyle().Faint(true)
	configStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ca8a04"))
)

// Options controls table output.
type Options struct {
	// Color applies lipgloss styles. Leave it off for pipes and tests.
	Color bool
}

const columnGap = "  "

// Table writes entries as aligned NAME VALUE SOURCE rows.
func Table(w io.Writer, entries []argtable.Entry, opts Options) error {
	rows := make([][3]string, 0, len(entries)+1)
	rows = append(rows, [3]string{"NAME", "VALUE", "SOURCE"})
	for _, e := range entries {
		value := e.Value
		if value == "" {
			value = `""`
		}
		source := string(e.Source)
		if e.Negated {
			source += " (negated)"
		}
		rows = append(rows, [3]string{e.Name, value, source})
	}

	var widths [3]int
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		name := runewidth.FillRight(row[0], widths[0])
		value := runewidth.FillRight(row[1], widths[1])
		source := row[2]
		if opts.Color {
			name, value, source = styleRow(i, entries, name, value, source)
		}
		line := strings.TrimRight(name+columnGap+value+columnGap+source, " ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styleRow(i int, entries []argtable.Entry, name, value, source string) (string, string, string) {
	if i == 0 {
		return headerStyle.Render(name), headerStyle.Render(value), headerStyle.Render(source)
	}
	e := entries[i-1]
	if e.Negated {
		return negatedStyle.Render(name), negatedStyle.Render(value), negatedStyle.Render(source)
	}
	switch e.Source {
	case argtable.SourceConfig:
		source = configStyle.Render(source)
	case argtable.SourceDefault:
		source = defaultStyle.Render(source)
	}
	return nameStyle.Render(name), value, source
}

// Lookup writes a single resolved lookup as name=value.
func Lookup(w io.Writer, name string, value any) error {
	_, err := fmt.Fprintf(w, "%s=%v\n", name, value)
	return err
}
