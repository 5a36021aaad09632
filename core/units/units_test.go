package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bwcalc/internal/errors"
)

func TestSizeBits(t *testing.T) {
	binary := map[SizeUnit]float64{
		Byte:     1,
		Kibibyte: 1024,
		Mebibyte: 1024 * 1024,
		Gibibyte: 1024 * 1024 * 1024,
		Tebibyte: 1024 * 1024 * 1024 * 1024,
	}
	magnitudes := []float64{0.5, 1, 3.75, 10, 1234.5678}

	for _, u := range SizeUnits() {
		for _, m := range magnitudes {
			bits, err := SizeBits(Size{Magnitude: m, Unit: u})
			require.NoError(t, err)
			assert.Equal(t, m*binary[u]*8, bits, "%v %s", m, u.Label())
		}
	}
}

func TestSpeedBps(t *testing.T) {
	decimalFactors := map[SpeedUnit]float64{
		Bps:  1,
		Kbps: 1e3,
		Mbps: 1e6,
		Gbps: 1e9,
		Tbps: 1e12,
	}
	magnitudes := []float64{0.5, 1, 3.75, 100, 1234.5678}

	for _, u := range SpeedUnits() {
		for _, m := range magnitudes {
			bps, err := SpeedBps(Speed{Magnitude: m, Unit: u})
			require.NoError(t, err)
			assert.Equal(t, m*decimalFactors[u], bps, "%v %s", m, u.Label())
		}
	}
}

func TestScenarioOneGiB(t *testing.T) {
	bits, err := SizeBits(Size{Magnitude: 1, Unit: Gibibyte})
	require.NoError(t, err)
	assert.Equal(t, 8589934592.0, bits)

	bps, err := SpeedBps(Speed{Magnitude: 100, Unit: Mbps})
	require.NoError(t, err)
	assert.Equal(t, 1e8, bps)
}

func TestInvalidUnitIsInternalError(t *testing.T) {
	_, err := SizeBits(Size{Magnitude: 1, Unit: SizeUnit('X')})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInternal))
	assert.Equal(t, "Invalid unit 'X'.", errors.Message(err))

	_, err = SpeedBps(Speed{Magnitude: 1, Unit: SpeedUnit('q')})
	require.Error(t, err)
	assert.Equal(t, "Invalid unit 'q'.", errors.Message(err))
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		input string
		size  SizeUnit
		speed SpeedUnit
		ok    bool
	}{
		{input: "b", size: Byte, speed: Bps, ok: true},
		{input: "K", size: Kibibyte, speed: Kbps, ok: true},
		{input: "  m", size: Mebibyte, speed: Mbps, ok: true},
		{input: "GiB", size: Gibibyte, speed: Gbps, ok: true},
		{input: "tbps", size: Tebibyte, speed: Tbps, ok: true},
		{input: "x", ok: false},
		{input: "", ok: false},
		{input: "   ", ok: false},
		{input: "7", ok: false},
		{input: "ß", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, ok := ParseSizeUnit(tt.input)
			assert.Equal(t, tt.ok, ok)
			speed, ok := ParseSpeedUnit(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.size, size)
				assert.Equal(t, tt.speed, speed)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	var sizeLabels, speedLabels []string
	for _, u := range SizeUnits() {
		sizeLabels = append(sizeLabels, u.Label())
	}
	for _, u := range SpeedUnits() {
		speedLabels = append(speedLabels, u.Label())
	}

	assert.Equal(t, []string{"B", "KiB", "MiB", "GiB", "TiB"}, sizeLabels)
	assert.Equal(t, []string{"bps", "Kbps", "Mbps", "Gbps", "Tbps"}, speedLabels)
	assert.Equal(t, "Tebibytes", Tebibyte.Name())
}

func TestScaleBandwidth(t *testing.T) {
	tests := []struct {
		name  string
		bps   float64
		value float64
		unit  SpeedUnit
	}{
		{name: "below kilo", bps: 999.99, value: 999.99, unit: Bps},
		{name: "exactly kilo", bps: 1000, value: 1, unit: Kbps},
		{name: "scenario two", bps: 83886080.0 / 60, value: 83886080.0 / 60 / 1e6, unit: Mbps},
		{name: "giga", bps: 2.5e9, value: 2.5, unit: Gbps},
		{name: "tera", bps: 1e12, value: 1, unit: Tbps},
		{name: "beyond tera", bps: 5e15, value: 5000, unit: Tbps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit := ScaleBandwidth(tt.bps)
			assert.Equal(t, tt.unit, unit)
			assert.InDelta(t, tt.value, value, 1e-9)
		})
	}
}

func TestExactBits(t *testing.T) {
	s := Size{Magnitude: 1.5, Unit: Tebibyte}
	assert.Equal(t, "13194139533312", s.ExactBits().String())

	v := Speed{Magnitude: 2.5, Unit: Gbps}
	assert.Equal(t, "2500000000", v.ExactBps().String())
}
