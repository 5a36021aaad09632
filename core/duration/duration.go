// Package duration composes and decomposes transfer durations.
package duration

import "math"

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
)

// Composite is a duration split into days, hours, minutes and seconds.
// Entered composites hold the literal user values; Decompose produces the
// display form of a computed total.
type Composite struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds float64
}

// TotalSeconds adds up all fields in seconds.
func (c Composite) TotalSeconds() float64 {
	return float64(c.Days)*SecondsPerDay +
		float64(c.Hours)*SecondsPerHour +
		float64(c.Minutes)*SecondsPerMinute +
		c.Seconds
}

// SplitWhole breaks whole seconds into days, hours, minutes and leftover seconds.
func SplitWhole(total int64) (days, hours, minutes, seconds int64) {
	days = total / SecondsPerDay
	rem := total % SecondsPerDay
	hours = rem / SecondsPerHour
	rem %= SecondsPerHour
	minutes = rem / SecondsPerMinute
	seconds = rem % SecondsPerMinute
	return days, hours, minutes, seconds
}

// Decompose rounds total to the nearest second for the day/hour/minute split,
// then adds the rounding difference back onto the leftover seconds. The
// seconds field can therefore be slightly negative when total rounded up
// across a minute boundary.
func Decompose(total float64) Composite {
	rounded := int64(math.Round(total))
	days, hours, minutes, seconds := SplitWhole(rounded)
	fraction := total - float64(rounded)

	return Composite{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: float64(seconds) + fraction,
	}
}
