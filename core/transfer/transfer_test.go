package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var samples = []struct {
	bits  float64
	other float64
}{
	{bits: 8, other: 1},
	{bits: 8589934592, other: 1e8},
	{bits: 83886080, other: 60},
	{bits: 1e15, other: 3.3},
	{bits: 0.5, other: 1e12},
}

func TestSecondsRoundTrip(t *testing.T) {
	for _, s := range samples {
		seconds := Seconds(s.bits, s.other)
		assert.InEpsilon(t, s.bits, seconds*s.other, 1e-12)
	}
}

func TestBitsPerSecondRoundTrip(t *testing.T) {
	for _, s := range samples {
		bps := BitsPerSecond(s.bits, s.other)
		assert.InEpsilon(t, s.bits, bps*s.other, 1e-12)
	}
}

func TestScenarios(t *testing.T) {
	assert.InDelta(t, 85.89934592, Seconds(8589934592, 1e8), 1e-12)
	assert.InDelta(t, 1398101.3333333333, BitsPerSecond(83886080, 60), 1e-6)
}
