package output

import (
	"bytes"
	"fmt"
	"io"

	"bwcalc/core/duration"
	"bwcalc/core/ui"
	"bwcalc/core/units"
)

type textFormatter struct{}

func (textFormatter) Format() Format {
	return FormatText
}

func (textFormatter) RenderTime(w io.Writer, r TimeResult) error {
	var b bytes.Buffer
	ui.NewWriter(&b, false).Rule()

	fmt.Fprintf(&b, "A file transfer of %.2f %s at %.2f %s will take:\n\n",
		r.Size.Magnitude, r.Size.Unit.Label(), r.Speed.Magnitude, r.Speed.Unit.Label())
	writeDuration(&b, duration.Decompose(r.Seconds))
	b.WriteString("\n")

	_, err := w.Write(b.Bytes())
	return err
}

func (textFormatter) RenderSpeed(w io.Writer, r SpeedResult) error {
	var b bytes.Buffer
	ui.NewWriter(&b, false).Rule()

	fmt.Fprintf(&b, "To transfer a file of %.2f %s in ", r.Size.Magnitude, r.Size.Unit.Label())
	writeDuration(&b, r.Duration)
	b.WriteString(", a bandwidth of:\n\n")

	value, unit := units.ScaleBandwidth(r.BitsPerSecond)
	fmt.Fprintf(&b, "%.2f %s is required\n", value, unit.Label())

	_, err := w.Write(b.Bytes())
	return err
}

// writeDuration prints days, hours and minutes from the first non-zero one
// onwards, then the seconds.
func writeDuration(b *bytes.Buffer, c duration.Composite) {
	shown := false
	if c.Days > 0 {
		fmt.Fprintf(b, "%d %s, ", c.Days, plural("day", c.Days == 1))
		shown = true
	}
	if c.Hours > 0 || shown {
		fmt.Fprintf(b, "%d %s, ", c.Hours, plural("hour", c.Hours == 1))
		shown = true
	}
	if c.Minutes > 0 || shown {
		fmt.Fprintf(b, "%d %s, ", c.Minutes, plural("minute", c.Minutes == 1))
	}
	fmt.Fprintf(b, "%.2f %s", c.Seconds, plural("second", c.Seconds == 1))
}

func plural(word string, one bool) string {
	if one {
		return word
	}
	return word + "s"
}
