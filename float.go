package num64

// splitFloat breaks a non-negative float64 below 1<<64 into the words of its
// integer part. Dividing by 1<<32 only adjusts the exponent, and the
// subtraction leaves a value below 1<<32 that float64 holds exactly, so the
// only truncation is the intended one towards zero.
func splitFloat(f float64) (hi, lo uint32) {
	hi = uint32(f / wrapUint32Float)
	lo = uint32(f - float64(hi)*wrapUint32Float)
	return hi, lo
}
