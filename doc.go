/*
Package num64 provides uint64 (U64) and int64 (I64) types built from pairs of
32-bit words, for code that must run where only 32-bit integer arithmetic is
available, or that wants the emulation for its own sake.

U64 and I64 are value types; all operations return new values. Arithmetic
wraps on overflow exactly like the native uint64 and int64 types, and every
operation except division by zero is total.

Simple example:

	u1 := U64FromRaw(0, 0xFFFFFFFF)
	u2 := U64From32(1)
	fmt.Println(u1.Add(u2))
	// Output: 4294967296

The arithmetic itself never touches a native 64-bit integer: addition and
subtraction propagate a carry or borrow between words, multiplication splits
each low word into 16-bit halves, and division is shift-subtract long
division. Signed multiplication and division strip the signs, work on the
magnitudes with the unsigned engine, and restore the sign afterwards.

U64 and I64 can be created from a variety of sources:

	U64FromRaw(hi, lo uint32) U64
	U64From32(v uint32) U64
	U64From16(v uint16) U64
	U64From8(v uint8) U64
	U64FromUint64(v uint64) U64
	U64FromString(s string) (out U64, accurate bool, err error)
	U64FromBigInt(v *big.Int) (out U64, accurate bool)
	U64FromFloat32(f float32) (out U64, inRange bool)
	U64FromFloat64(f float64) (out U64, inRange bool)

	I64FromRaw(hi int32, lo uint32) I64
	I64From32(v int32) I64
	I64FromInt64(v int64) I64
	...

U64 and I64 support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler

Division by zero panics, as it does for the native integer types. Shift
amounts of 64 or more are allowed and produce the same results Go gives for
native shifts.
*/
package num64
