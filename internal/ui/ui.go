package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	Green     = lipgloss.Color("42")
	Amber     = lipgloss.Color("220")
	Red       = lipgloss.Color("203")
	Cyan      = lipgloss.Color("39")
	LightGray = lipgloss.Color("246")

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(Green)
	infoStyle    = lipgloss.NewStyle().Foreground(Cyan)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(Amber)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(Red)
	dimStyle     = lipgloss.NewStyle().Foreground(LightGray)
)

// Print helpers for one-shot commands. Diagnostics go to stderr so piped
// stdout stays machine-readable.

func Success(format string, a ...any) {
	fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf(format, a...)))
}

func Info(format string, a ...any) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf(format, a...)))
}

func Warn(format string, a ...any) {
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf(format, a...)))
}

func Error(format string, a ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, a...)))
}

func Dim(format string, a ...any) {
	fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf(format, a...)))
}
