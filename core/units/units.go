// Package units - File size and connection speed units
// Sizes are binary (base-1024) byte units, speeds are decimal (base-1000)
// bit rates. Both normalize to bits.
package units

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// BitsPerByte converts byte counts to bit counts
const BitsPerByte = 8

// SizeUnit is a file size unit, identified by its menu letter
type SizeUnit byte

const (
	Byte     SizeUnit = 'B'
	Kibibyte SizeUnit = 'K'
	Mebibyte SizeUnit = 'M'
	Gibibyte SizeUnit = 'G'
	Tebibyte SizeUnit = 'T'
)

// SpeedUnit is a connection speed unit, identified by its menu letter
type SpeedUnit byte

const (
	Bps  SpeedUnit = 'B'
	Kbps SpeedUnit = 'K'
	Mbps SpeedUnit = 'M'
	Gbps SpeedUnit = 'G'
	Tbps SpeedUnit = 'T'
)

type unitInfo struct {
	label  string
	name   string
	factor decimal.Decimal
}

var sizeUnits = map[SizeUnit]unitInfo{
	Byte:     {label: "B", name: "Bytes", factor: decimal.NewFromInt(1)},
	Kibibyte: {label: "KiB", name: "Kibibytes", factor: decimal.NewFromInt(1 << 10)},
	Mebibyte: {label: "MiB", name: "Mebibytes", factor: decimal.NewFromInt(1 << 20)},
	Gibibyte: {label: "GiB", name: "Gibibytes", factor: decimal.NewFromInt(1 << 30)},
	Tebibyte: {label: "TiB", name: "Tebibytes", factor: decimal.NewFromInt(1 << 40)},
}

var speedUnits = map[SpeedUnit]unitInfo{
	Bps:  {label: "bps", name: "bps", factor: decimal.New(1, 0)},
	Kbps: {label: "Kbps", name: "Kbps", factor: decimal.New(1, 3)},
	Mbps: {label: "Mbps", name: "Mbps", factor: decimal.New(1, 6)},
	Gbps: {label: "Gbps", name: "Gbps", factor: decimal.New(1, 9)},
	Tbps: {label: "Tbps", name: "Tbps", factor: decimal.New(1, 12)},
}

// SizeUnits lists size units smallest first
func SizeUnits() []SizeUnit {
	return []SizeUnit{Byte, Kibibyte, Mebibyte, Gibibyte, Tebibyte}
}

// SpeedUnits lists speed units smallest first
func SpeedUnits() []SpeedUnit {
	return []SpeedUnit{Bps, Kbps, Mbps, Gbps, Tbps}
}

// Valid reports whether u is a known size unit
func (u SizeUnit) Valid() bool {
	_, ok := sizeUnits[u]
	return ok
}

// Label is the short display form, e.g. "MiB"
func (u SizeUnit) Label() string {
	return sizeUnits[u].label
}

// Name is the menu form, e.g. "Mebibytes"
func (u SizeUnit) Name() string {
	return sizeUnits[u].name
}

// Factor is the number of bytes in one unit
func (u SizeUnit) Factor() decimal.Decimal {
	return sizeUnits[u].factor
}

// Valid reports whether u is a known speed unit
func (u SpeedUnit) Valid() bool {
	_, ok := speedUnits[u]
	return ok
}

// Label is the short display form, e.g. "Mbps"
func (u SpeedUnit) Label() string {
	return speedUnits[u].label
}

// Name is the menu form
func (u SpeedUnit) Name() string {
	return speedUnits[u].name
}

// Factor is the number of bits per second in one unit
func (u SpeedUnit) Factor() decimal.Decimal {
	return speedUnits[u].factor
}

// ParseSizeUnit selects a size unit from the first non-space character of s, ignoring case.
func ParseSizeUnit(s string) (SizeUnit, bool) {
	c, ok := firstLetter(s)
	if !ok {
		return 0, false
	}
	u := SizeUnit(c)
	return u, u.Valid()
}

// ParseSpeedUnit selects a speed unit from the first non-space character of s, ignoring case.
func ParseSpeedUnit(s string) (SpeedUnit, bool) {
	c, ok := firstLetter(s)
	if !ok {
		return 0, false
	}
	u := SpeedUnit(c)
	return u, u.Valid()
}

func firstLetter(s string) (byte, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" || s[0] > unicode.MaxASCII {
		return 0, false
	}
	return byte(unicode.ToUpper(rune(s[0]))), true
}
