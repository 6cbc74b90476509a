package magetasks

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Println()
	fmt.Println(headerStyle.Render("=== " + title + " ==="))
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) { fmt.Println(successStyle.Render("✓ " + msg)) }

// PrintWarning prints a warning message.
func PrintWarning(msg string) { fmt.Println(warningStyle.Render("! " + msg)) }

// PrintError prints an error message.
func PrintError(msg string) { fmt.Println(errorStyle.Render("✗ " + msg)) }
