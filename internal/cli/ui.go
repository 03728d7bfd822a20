package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(20)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printField(w io.Writer, label string, value any) {
	var rendered string
	switch v := value.(type) {
	case int, int64, uint32, uint64:
		rendered = styleNumber.Render(fmt.Sprint(v))
	default:
		rendered = styleValue.Render(fmt.Sprint(v))
	}
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(label), rendered)
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), msg)
}
