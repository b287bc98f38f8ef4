package fixed

// An Angle is a rotation expressed as a 16-bit binary fraction of a full
// turn, so arithmetic on angles wraps at exactly one turn.
type Angle uint16

const (
	QuarterTurn Angle = 1 << 14
	HalfTurn    Angle = 1 << 15
)

// Turns converts an integer angle in 1/n turns, e.g. Turns(1, 360) is one
// degree.
func Turns(num, denom int) Angle {
	return Angle(num * (1 << 16) / denom)
}

// Sin returns the sine of a in Q16.16, using Bhaskara I's rational
// approximation on each half turn. The worst case error is about 0.0016,
// well below the visible error of device-space rounding.
func Sin(a Angle) Int16_16 {
	neg := a >= HalfTurn
	if neg {
		a -= HalfTurn
	}
	// t in [0,1) across the half turn, Q16.16
	t := Int16_16(uint32(a) << 1)
	u := t.Mul(One - t)
	s := (u << 4).Div(5*One - u<<2)
	if neg {
		return -s
	}
	return s
}

// Cos returns the cosine of a in Q16.16.
func Cos(a Angle) Int16_16 {
	return Sin(a + QuarterTurn)
}
