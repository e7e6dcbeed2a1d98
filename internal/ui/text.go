package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// DisableColor turns coloured output off for the rest of the process.
func DisableColor() { color.NoColor = true }

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for CLI output.
var (
	// ID formats account ids. Cyan with color, #-prefixed without.
	ID = Formatter{color.New(color.FgCyan), "#", ""}

	// Name formats account names.
	Name = Formatter{color.New(color.Bold), "", ""}

	// Path formats file paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Label formats field labels in detail views.
	Label = Formatter{color.New(color.FgHiBlack), "", ""}

	// Secret formats revealed passwords.
	Secret = Formatter{color.New(color.FgRed, color.Bold), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}

	// Muted formats secondary text. Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
