package gamemath

// Remap maps x linearly from [domainStart, domainEnd] onto [rangeStart, rangeEnd].
// The result is not clamped: inputs outside the domain extrapolate along the
// same line. An empty domain maps everything to rangeStart.
func Remap(x, domainStart, domainEnd, rangeStart, rangeEnd float64) float64 {
	span := domainEnd - domainStart
	if span == 0 {
		return rangeStart
	}
	return rangeStart + (x-domainStart)*(rangeEnd-rangeStart)/span
}

// Clamp constrains value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
