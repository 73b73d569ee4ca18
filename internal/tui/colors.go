package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// colorEnabled reports whether styled output should be produced.
// Respects NO_COLOR and degrades when stdout is not a terminal.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func render(color string, text string) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return render("1", text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return render("2", text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return render("3", text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return render("6", text)
}

// ColorDim renders text in a faint style
func ColorDim(text string) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Faint(true).Render(text)
}

// ColorBranchName styles a branch name for display
func ColorBranchName(name string, protected bool) string {
	if protected {
		return ColorYellow(name)
	}
	return ColorCyan(name)
}
