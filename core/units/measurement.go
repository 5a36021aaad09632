package units

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bwcalc/internal/errors"
)

// Size is a file size as the user entered it
type Size struct {
	Magnitude float64
	Unit      SizeUnit
}

// Speed is a connection speed as the user entered it
type Speed struct {
	Magnitude float64
	Unit      SpeedUnit
}

// SizeBits normalizes a size to bits.
// Units are validated at the prompt, so an unknown unit here is an internal error.
func SizeBits(s Size) (float64, error) {
	info, ok := sizeUnits[s.Unit]
	if !ok {
		return 0, invalidUnit(byte(s.Unit))
	}
	factor := info.factor.InexactFloat64() * BitsPerByte
	return s.Magnitude * factor, nil
}

// SpeedBps normalizes a speed to bits per second.
func SpeedBps(s Speed) (float64, error) {
	info, ok := speedUnits[s.Unit]
	if !ok {
		return 0, invalidUnit(byte(s.Unit))
	}
	return s.Magnitude * info.factor.InexactFloat64(), nil
}

// ExactBits is the bit count of s computed in decimal arithmetic.
func (s Size) ExactBits() decimal.Decimal {
	return decimal.NewFromFloat(s.Magnitude).
		Mul(s.Unit.Factor()).
		Mul(decimal.NewFromInt(BitsPerByte))
}

// ExactBps is the bit rate of s computed in decimal arithmetic.
func (s Speed) ExactBps() decimal.Decimal {
	return decimal.NewFromFloat(s.Magnitude).Mul(s.Unit.Factor())
}

// ScaleBandwidth picks the largest speed unit that keeps bps below the next
// unit's factor, and returns bps expressed in it. Anything from 1 Tbps up
// stays in Tbps.
func ScaleBandwidth(bps float64) (float64, SpeedUnit) {
	all := SpeedUnits()
	for i, u := range all[:len(all)-1] {
		if bps < all[i+1].Factor().InexactFloat64() {
			return bps / u.Factor().InexactFloat64(), u
		}
	}
	top := all[len(all)-1]
	return bps / top.Factor().InexactFloat64(), top
}

func invalidUnit(c byte) error {
	return errors.Internal(fmt.Sprintf("Invalid unit '%c'.", c))
}
