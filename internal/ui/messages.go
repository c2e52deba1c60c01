// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// quietMode suppresses all non-essential output when true. Violations and
// errors still print so that hook output stays useful in CI logs.
var quietMode bool

// SetQuietMode enables or disables quiet mode for all ui output.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// IsQuiet reports whether quiet mode is enabled.
func IsQuiet() bool {
	return quietMode
}

// Println prints an empty line.
func Println() {
	if quietMode {
		return
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message. Errors print even in quiet mode.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+msg))
}

// PrintWarning prints a warning message. Warnings print even in quiet mode
// because guard findings surface through them during hook runs.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintInfo(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintDim(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(DimStyle.Render(msg))
}

// PrintBox prints content in a styled box.
//
// Parameters:
//   - title: Box title
//   - content: Box content
func PrintBox(title, content string) {
	if quietMode {
		return
	}
	titleStyled := BoxTitleStyle.Render(title)
	box := BoxStyle.Render(titleStyled + "\n" + content)
	fmt.Println(box)
}

// PrintTableHeader prints a table header row followed by a separator sized
// to the terminal width (falls back to 80 columns when not a terminal).
//
// Parameters:
//   - columns: Column names
func PrintTableHeader(columns ...string) {
	if quietMode {
		return
	}
	var cells []string
	for _, col := range columns {
		cells = append(cells, TableHeaderStyle.Render(col))
	}
	fmt.Println(strings.Join(cells, ""))
	fmt.Println(DimStyle.Render(strings.Repeat("─", terminalWidth())))
}

// PrintTableRow prints a table data row.
//
// Parameters:
//   - values: Cell values
func PrintTableRow(values ...string) {
	if quietMode {
		return
	}
	var cells []string
	for _, val := range values {
		cells = append(cells, TableCellStyle.Render(val))
	}
	fmt.Println(strings.Join(cells, ""))
}

// terminalWidth returns the current terminal width, capped to keep
// separators readable on very wide terminals.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 120 {
		return 120
	}
	return width
}
