// Package transfer - Transfer time and bandwidth math
// Inputs are normalized to bits, bits per second and seconds. Callers
// guarantee non-zero divisors.
package transfer

// Seconds is the time needed to move bits at bps
func Seconds(bits, bps float64) float64 {
	return bits / bps
}

// BitsPerSecond is the bandwidth needed to move bits within seconds
func BitsPerSecond(bits, seconds float64) float64 {
	return bits / seconds
}
