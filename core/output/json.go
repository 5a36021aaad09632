package output

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"bwcalc/core/duration"
	"bwcalc/core/units"
	"bwcalc/internal/errors"
)

type jsonFormatter struct{}

// number is a float64 that encodes overflowed results as the strings
// "+Inf", "-Inf" or "NaN" instead of failing.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return json.Marshal(f)
}

type sizeJSON struct {
	Value number          `json:"value"`
	Unit  string          `json:"unit"`
	Bits  decimal.Decimal `json:"bits"`
}

type speedJSON struct {
	Value number          `json:"value"`
	Unit  string          `json:"unit"`
	Bps   decimal.Decimal `json:"bps"`
}

type durationJSON struct {
	Days    int64  `json:"days"`
	Hours   int64  `json:"hours"`
	Minutes int64  `json:"minutes"`
	Seconds number `json:"seconds"`
}

type bandwidthJSON struct {
	Bps   number `json:"bps"`
	Value number `json:"value"`
	Unit  string `json:"unit"`
}

type timeReport struct {
	Mode         string       `json:"mode"`
	Size         sizeJSON     `json:"size"`
	Speed        speedJSON    `json:"speed"`
	TotalSeconds number       `json:"total_seconds"`
	Duration     durationJSON `json:"duration"`
}

type speedReport struct {
	Mode         string        `json:"mode"`
	Size         sizeJSON      `json:"size"`
	Duration     durationJSON  `json:"duration"`
	TotalSeconds number        `json:"total_seconds"`
	Bandwidth    bandwidthJSON `json:"bandwidth"`
}

func (jsonFormatter) Format() Format {
	return FormatJSON
}

func (jsonFormatter) RenderTime(w io.Writer, r TimeResult) error {
	return encode(w, timeReport{
		Mode: "time",
		Size: newSizeJSON(r.Size),
		Speed: speedJSON{
			Value: number(r.Speed.Magnitude),
			Unit:  r.Speed.Unit.Label(),
			Bps:   r.Speed.ExactBps(),
		},
		TotalSeconds: number(r.Seconds),
		Duration:     newDurationJSON(duration.Decompose(r.Seconds)),
	})
}

func (jsonFormatter) RenderSpeed(w io.Writer, r SpeedResult) error {
	value, unit := units.ScaleBandwidth(r.BitsPerSecond)
	return encode(w, speedReport{
		Mode:         "speed",
		Size:         newSizeJSON(r.Size),
		Duration:     newDurationJSON(r.Duration),
		TotalSeconds: number(r.Duration.TotalSeconds()),
		Bandwidth: bandwidthJSON{
			Bps:   number(r.BitsPerSecond),
			Value: number(value),
			Unit:  unit.Label(),
		},
	})
}

func newSizeJSON(s units.Size) sizeJSON {
	return sizeJSON{
		Value: number(s.Magnitude),
		Unit:  s.Unit.Label(),
		Bits:  s.ExactBits(),
	}
}

func newDurationJSON(c duration.Composite) durationJSON {
	return durationJSON{
		Days:    c.Days,
		Hours:   c.Hours,
		Minutes: c.Minutes,
		Seconds: number(c.Seconds),
	}
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.TypeInternal, "cannot encode result", err)
	}
	return nil
}
