// Package ui provides colored console output utilities for user interfaces
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// Color functions for different message types
	successColor  = color.New(color.FgGreen, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	infoColor     = color.New(color.FgCyan)
	progressColor = color.New(color.FgBlue)
	debugColor    = color.New(color.FgHiBlack)

	// Symbols
	successSymbol = "✓"
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
	debugSymbol   = "·"

	// Results go to stdout; diagnostics go to stderr so piped output stays clean
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error

	verbose bool
)

// SetOutput redirects console output. Passing nil restores the default.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = color.Output
	}
	if errOut == nil {
		errOut = color.Error
	}
	stdout = out
	stderr = errOut
}

// SetVerbose enables or disables Debug output
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose reports whether Debug output is enabled
func IsVerbose() bool {
	return verbose
}

// Debug prints a dimmed diagnostic message when verbose output is enabled
func Debug(format string, args ...interface{}) {
	if !verbose {
		return
	}
	message := fmt.Sprintf(format, args...)
	_, _ = debugColor.Fprintf(stderr, "%s %s\n", debugSymbol, message)
}

// Success prints a success message in green with a checkmark
func Success(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = successColor.Fprintf(stdout, "%s %s\n", successSymbol, message)
}

// Error prints an error message in red with an X
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = errorColor.Fprintf(stderr, "%s %s\n", errorSymbol, message)
}

// Warning prints a warning message in yellow with a warning symbol
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = warningColor.Fprintf(stderr, "%s %s\n", warningSymbol, message)
}

// Info prints an info message in cyan with an arrow
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = infoColor.Fprintf(stdout, "%s %s\n", infoSymbol, message)
}

// Progress prints an indented step message in blue
func Progress(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = progressColor.Fprintf(stdout, "  %s %s\n", infoSymbol, message)
}

// Println prints a regular message without color
func Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(stdout, format+"\n", args...)
}

// Raw writes text to stdout exactly as given
func Raw(text string) {
	_, _ = io.WriteString(stdout, text)
}

// Header prints a bold header message
func Header(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = color.New(color.Bold).Fprintln(stdout, message)
}

// Highlight returns text in a highlighted color (for emphasis)
func Highlight(text string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// HighlightVersion returns a version string in a highlighted color
func HighlightVersion(version string) string {
	return color.New(color.FgMagenta, color.Bold).Sprint(version)
}

// Dim returns text in a muted color
func Dim(text string) string {
	return debugColor.Sprint(text)
}
