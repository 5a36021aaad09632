// Package prompt reads calculator input interactively.
// Each prompt reads one line at a time and repeats until the line holds an
// acceptable value.
package prompt

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bwcalc/core/duration"
	"bwcalc/core/ui"
	"bwcalc/core/units"
	"bwcalc/internal/errors"
	"bwcalc/internal/logging"
)

const invalidInput = "Invalid input."

// Prompter asks for values on a ui.Writer and reads answers from an io.Reader
type Prompter struct {
	in  *bufio.Reader
	out *ui.Writer
}

// New creates a Prompter
func New(in io.Reader, out *ui.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Size asks for a file size unit and magnitude
func (p *Prompter) Size() (units.Size, error) {
	p.out.Banner("File Size Units")
	for _, u := range units.SizeUnits() {
		p.out.Println("%c)  %s", byte(u), u.Name())
	}

	unit, err := ask(p, "\nChoose a file size unit: ", units.ParseSizeUnit, "")
	if err != nil {
		return units.Size{}, err
	}
	magnitude, err := ask(p, "\nEnter a file size: ", parsePositive, "")
	if err != nil {
		return units.Size{}, err
	}
	p.out.Blank()

	return units.Size{Magnitude: magnitude, Unit: unit}, nil
}

// Speed asks for a connection speed unit and magnitude
func (p *Prompter) Speed() (units.Speed, error) {
	p.out.Banner("Connection Speed Units")
	for _, u := range units.SpeedUnits() {
		p.out.Println("%c)  %s", byte(u), u.Name())
	}

	unit, err := ask(p, "\nChoose a connection speed unit: ", units.ParseSpeedUnit, "")
	if err != nil {
		return units.Speed{}, err
	}
	magnitude, err := ask(p, "\nEnter a connection speed: ", parsePositive, "")
	if err != nil {
		return units.Speed{}, err
	}
	p.out.Blank()

	return units.Speed{Magnitude: magnitude, Unit: unit}, nil
}

// Duration asks for days, hours, minutes and seconds. The entered values are
// returned as typed. A total of zero is reported on the writer and returned
// as errors.ErrNonPositiveDuration.
func (p *Prompter) Duration() (duration.Composite, error) {
	var c duration.Composite
	var err error

	p.out.Banner("Time Input")

	if c.Days, err = ask(p, "Enter days (e.g., 1, or 0 if none): ", parseCount, invalidInput); err != nil {
		return duration.Composite{}, err
	}
	if c.Hours, err = ask(p, "Enter hours (e.g., 1, or 0 if none): ", parseCount, invalidInput); err != nil {
		return duration.Composite{}, err
	}
	if c.Minutes, err = ask(p, "Enter minutes (e.g., 1, or 0 if none): ", parseCount, invalidInput); err != nil {
		return duration.Composite{}, err
	}
	if c.Seconds, err = ask(p, "Enter seconds (e.g., 1.5, or 0 if none): ", parseNonNegative, ""); err != nil {
		return duration.Composite{}, err
	}
	p.out.Blank()

	if c.TotalSeconds() <= 0 {
		p.out.Rule()
		p.out.Error("Total transfer time must be greater than zero.")
		return c, errors.ErrNonPositiveDuration
	}
	return c, nil
}

// ask prints prompt and reads lines until parse accepts one. When invalid is
// non-empty it is printed after every rejected line.
func ask[T any](p *Prompter, prompt string, parse func(string) (T, bool), invalid string) (T, error) {
	for {
		p.out.Print("%s", prompt)

		line, err := p.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(line); ok {
			return v, nil
		}

		logging.Debug("input rejected",
			zap.String("prompt", strings.TrimSpace(prompt)),
			zap.String("input", line))
		if invalid != "" {
			p.out.Println("%s", invalid)
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", errors.Input("input ended before a value was entered", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// firstFloat parses the first whitespace-separated field of line; the rest is ignored.
func firstFloat(line string) (float64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parsePositive(line string) (float64, bool) {
	v, ok := firstFloat(line)
	return v, ok && v > 0
}

func parseNonNegative(line string) (float64, bool) {
	v, ok := firstFloat(line)
	return v, ok && v >= 0
}

// parseCount accepts a lone non-negative integer; anything else on the line rejects it.
func parseCount(line string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
