// Package output provides result formatting.
// Results keep the values as the user typed them next to the computed quotient.
package output

import (
	"fmt"
	"io"

	"bwcalc/core/duration"
	"bwcalc/core/units"
	"bwcalc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the human-readable console report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// TimeResult is the outcome of a transfer time calculation
type TimeResult struct {
	Size    units.Size
	Speed   units.Speed
	Seconds float64
}

// SpeedResult is the outcome of a bandwidth calculation
type SpeedResult struct {
	Size          units.Size
	Duration      duration.Composite
	BitsPerSecond float64
}

// Formatter renders results in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderTime writes a transfer time result
	RenderTime(w io.Writer, r TimeResult) error

	// RenderSpeed writes a bandwidth result
	RenderSpeed(w io.Writer, r SpeedResult) error
}

// New returns the formatter for format
func New(format Format) (Formatter, error) {
	switch format {
	case FormatText, "":
		return textFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	default:
		return nil, errors.Usage(fmt.Sprintf("unknown output format %q", string(format)))
	}
}
