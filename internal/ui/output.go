package ui

import (
	"fmt"
	"os"
)

// Unicode symbols for status output. Symbols carry the meaning; color is
// reserved for accents.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// Successf prints a success line to stdout.
func Successf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, SymbolSuccess+" "+format+"\n", args...)
}

// Errorf prints an error line to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, SymbolError+" "+format+"\n", args...)
}

// Warningf prints a warning line to stderr.
func Warningf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, SymbolWarning+" "+format+"\n", args...)
}

// Infof prints an informational line to stdout.
func Infof(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, SymbolInfo+" "+format+"\n", args...)
}
