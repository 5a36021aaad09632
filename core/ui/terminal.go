// Package ui - Terminal output
// Plain line-oriented console output with optional colored banners.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
	Cyan  = "\033[36m"
)

const (
	bannerWidth = 24
	ruleWidth   = 25
)

// Writer is the UI output destination
type Writer struct {
	out   io.Writer
	color bool
}

// NewWriter creates a UI writer. Color is off unless enabled.
func NewWriter(out io.Writer, color bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:   out,
		color: color,
	}
}

func (w *Writer) paint(c, text string) string {
	if !w.color {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text without a newline
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes formatted text followed by a newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Blank writes an empty line
func (w *Writer) Blank() {
	fmt.Fprintln(w.out)
}

// Banner prints a title between two lines of '='
func (w *Writer) Banner(title string) {
	line := strings.Repeat("=", bannerWidth)
	w.Println("%s", line)
	w.Println("%s", w.paint(Bold+Cyan, title))
	w.Println("%s", line)
}

// Rule prints the separator that precedes results
func (w *Writer) Rule() {
	w.Println("%s", strings.Repeat("-", ruleWidth))
}

// Error prints an "Error: " prefixed message
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.paint(Red, "Error: "), msg)
}
