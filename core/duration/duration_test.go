package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalSeconds(t *testing.T) {
	tests := []struct {
		name string
		c    Composite
		want float64
	}{
		{name: "zero", c: Composite{}, want: 0},
		{name: "one minute", c: Composite{Minutes: 1}, want: 60},
		{name: "fractional seconds", c: Composite{Seconds: 1.5}, want: 1.5},
		{name: "all fields", c: Composite{Days: 1, Hours: 2, Minutes: 3, Seconds: 4.25}, want: 86400 + 7200 + 180 + 4.25},
		{name: "hours beyond a day", c: Composite{Hours: 30}, want: 108000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.TotalSeconds())
		})
	}
}

func TestSplitWholeRecomposes(t *testing.T) {
	samples := []int64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 86400, 90061, 1_000_000, 987_654_321}

	for _, total := range samples {
		days, hours, minutes, seconds := SplitWhole(total)

		assert.Equal(t, total, days*SecondsPerDay+hours*SecondsPerHour+minutes*SecondsPerMinute+seconds)
		assert.GreaterOrEqual(t, hours, int64(0))
		assert.Less(t, hours, int64(24))
		assert.GreaterOrEqual(t, minutes, int64(0))
		assert.Less(t, minutes, int64(60))
		assert.GreaterOrEqual(t, seconds, int64(0))
		assert.Less(t, seconds, int64(60))
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  Composite
	}{
		{
			name:  "one gibibyte over 100 Mbps",
			total: 85.89934592,
			want:  Composite{Minutes: 1, Seconds: 25.89934592},
		},
		{
			name:  "rounds down",
			total: 3661.2,
			want:  Composite{Hours: 1, Minutes: 1, Seconds: 1.2},
		},
		{
			name:  "rounding up across a minute leaves negative seconds",
			total: 59.7,
			want:  Composite{Minutes: 1, Seconds: -0.3},
		},
		{
			name:  "days",
			total: 2*86400 + 5,
			want:  Composite{Days: 2, Seconds: 5},
		},
		{
			name:  "sub-second",
			total: 0.25,
			want:  Composite{Seconds: 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.total)
			assert.Equal(t, tt.want.Days, got.Days)
			assert.Equal(t, tt.want.Hours, got.Hours)
			assert.Equal(t, tt.want.Minutes, got.Minutes)
			assert.InDelta(t, tt.want.Seconds, got.Seconds, 1e-9)
		})
	}
}
