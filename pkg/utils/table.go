package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// Color functions
func Red(s string) string    { return redStyle.Render(s) }
func Green(s string) string  { return greenStyle.Render(s) }
func Yellow(s string) string { return yellowStyle.Render(s) }
func Blue(s string) string   { return blueStyle.Render(s) }

// YesNo renders a boolean as a green "yes" or a yellow "no".
func YesNo(v bool) string {
	if v {
		return Green("yes")
	}
	return Yellow("no")
}

// PrintTableHeader prints table header
func PrintTableHeader(w io.Writer, widths []int, headers []string) {
	printTableLine(w, widths)
	printTableRow(w, widths, headers)
	printTableLine(w, widths)
}

// PrintTableRow prints a table row
func PrintTableRow(w io.Writer, widths []int, values ...string) {
	printTableRow(w, widths, values)
}

// PrintTableFooter prints table footer
func PrintTableFooter(w io.Writer, widths []int) {
	printTableLine(w, widths)
}

func printTableLine(w io.Writer, widths []int) {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	fmt.Fprintln(w, b.String())
}

func printTableRow(w io.Writer, widths []int, values []string) {
	var b strings.Builder
	b.WriteString("|")
	for i, width := range widths {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if lipgloss.Width(val) > width {
			val = truncate(val, width-2) + ".."
		}
		// pad on visible width so styled cells line up
		fmt.Fprintf(&b, " %s%s |", val, strings.Repeat(" ", width-lipgloss.Width(val)))
	}
	fmt.Fprintln(w, b.String())
}

func truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// KeyValueTable prints a key-value table. Values are never truncated when
// valWidth is 0.
func KeyValueTable(w io.Writer, title string, pairs [][2]string, keyWidth, valWidth int) {
	if title != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render(title))
		fmt.Fprintln(w)
	}

	for _, pair := range pairs {
		key, val := pair[0], pair[1]
		if valWidth > 0 && lipgloss.Width(val) > valWidth {
			val = truncate(val, valWidth-2) + ".."
		}
		fmt.Fprintf(w, "  %-*s: %s\n", keyWidth, key, val)
	}
}
