package num64

import (
	"fmt"
	"math/big"
)

// I64 is a signed 64-bit two's complement integer stored as an unsigned low
// word and a signed high word. The sign of the value is the sign of hi.
type I64 struct {
	hi int32
	lo uint32
}

// I64FromString creates a I64 from a string. Overflow truncates to
// MaxI64/MinI64 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I64FromString(s string) (out I64, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num64: i64 string %q invalid", s)
	}
	out, accurate = I64FromBigInt(b)
	return out, accurate, nil
}

// I64FromRaw is the complement to I64.Raw(); it creates an I64 from the hi
// and lo words.
func I64FromRaw(hi int32, lo uint32) I64 {
	return I64{hi: hi, lo: lo}
}

// I64From32 sign-extends v into the high word.
func I64From32(v int32) I64 {
	var hi int32
	if v < 0 {
		hi = -1
	}
	return I64{hi: hi, lo: uint32(v)}
}

func I64From16(v int16) I64 { return I64From32(int32(v)) }
func I64From8(v int8) I64   { return I64From32(int32(v)) }
func I64FromU64(v U64) I64  { return v.AsI64() }

// I64FromInt64 splits a native int64 into words. It exists for interop with
// code that has native 64-bit integers; the arithmetic never needs it.
func I64FromInt64(v int64) I64 {
	return I64{hi: int32(v >> 32), lo: uint32(v)}
}

var minI64AsAbsU64 = U64{hi: signBit, lo: 0}

func I64FromBigInt(v *big.Int) (out I64, accurate bool) {
	neg := v.Sign() < 0

	var abs big.Int
	abs.Abs(v)
	u, accurate := U64FromBigInt(&abs)

	if !neg {
		if !u.IsI64() {
			return MaxI64, false
		}
		return u.AsI64(), accurate

	} else {
		if cmp := u.Cmp(minI64AsAbsU64); cmp == 0 {
			return MinI64, accurate
		} else if cmp > 0 {
			return MinI64, false
		}
		return u.AsI64().Neg(), accurate
	}
}

func I64FromFloat32(f float32) (out I64, inRange bool) {
	return I64FromFloat64(float64(f))
}

// I64FromFloat64 creates a I64 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of a I64 are clamped and inRange will be set to
// false.
//
// NaN is treated as 0, inRange is set to false.
func I64FromFloat64(f float64) (out I64, inRange bool) {
	if f == 0 {
		return out, true

	} else if f != f { // f != f == isnan
		return out, false

	} else if f < 0 {
		if f < -wrapInt64Float {
			return MinI64, false
		}
		hi, lo := splitFloat(-f)
		return U64{hi: hi, lo: lo}.AsI64().Neg(), true

	} else {
		if f >= wrapInt64Float {
			return MaxI64, false
		}
		hi, lo := splitFloat(f)
		return I64{hi: int32(hi), lo: lo}, true
	}
}

// RandI64 generates a positive signed 64-bit random integer from an external
// source.
func RandI64(source RandSource) (out I64) {
	return I64{hi: int32(source.Uint32() & signMask), lo: source.Uint32()}
}

func (i I64) IsZero() bool { return i == zeroI64 }

// Raw returns access to the I64 as its pair of words. See I64FromRaw() for
// the counterpart.
func (i I64) Raw() (hi int32, lo uint32) { return i.hi, i.lo }

func (i I64) String() string {
	if i.hi < 0 {
		return "-" + i.Neg().AsU64().String()
	}
	return i.AsU64().String()
}

func (i I64) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I64 into a big.Int, allowing you to retain and
// recycle memory.
func (i I64) IntoBigInt(b *big.Int) {
	if i.hi < 0 {
		i.Neg().AsU64().IntoBigInt(b)
		b.Neg(b)
		return
	}
	i.AsU64().IntoBigInt(b)
}

// AsBigInt allocates a new big.Int and copies this I64 into it.
func (i I64) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i I64) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

// AsU64 performs a direct cast of an I64 to a U64. Negative numbers
// become values > MaxI64.
func (i I64) AsU64() U64 {
	return U64{hi: uint32(i.hi), lo: i.lo}
}

// IsU64 reports whether i can be represented in a U64.
func (i I64) IsU64() bool {
	return i.hi >= 0
}

// AsFloat64 converts i to the nearest float64. Negative values are converted
// as a magnitude and negated; MinI64 negates to itself, whose unsigned
// reading is exactly 1<<63.
func (i I64) AsFloat64() float64 {
	if i.hi < 0 {
		return -i.Neg().AsU64().AsFloat64()
	}
	return i.AsU64().AsFloat64()
}

// AsInt32 truncates the I64 to fit in a int32. Values outside the range will
// over/underflow. See IsInt32() if you want to check before you convert.
func (i I64) AsInt32() int32 {
	return int32(i.lo)
}

// IsInt32 reports whether i can be represented as a int32.
func (i I64) IsInt32() bool {
	if i.hi < 0 {
		return i.hi == -1 && i.lo&signBit != 0
	}
	return i.hi == 0 && i.lo&signBit == 0
}

// AsInt64 joins the words into a native int64.
func (i I64) AsInt64() int64 {
	return int64(i.hi)<<32 | int64(i.lo)
}

func (i I64) Sign() int {
	if i == zeroI64 {
		return 0
	} else if i.hi >= 0 {
		return 1
	}
	return -1
}

func (i I64) Inc() I64 { return i.AsU64().Inc().AsI64() }
func (i I64) Dec() I64 { return i.AsU64().Dec().AsI64() }

// Add returns i+n. Two's complement addition has the same bit pattern as
// unsigned addition, so the unsigned engine does the work.
func (i I64) Add(n I64) I64 {
	return i.AsU64().Add(n.AsU64()).AsI64()
}

func (i I64) Sub(n I64) I64 {
	return i.AsU64().Sub(n.AsU64()).AsI64()
}

// Neg returns -i. Negating MinI64 overflows back to MinI64.
func (i I64) Neg() I64 {
	return zeroU64.Sub(i.AsU64()).AsI64()
}

// Abs returns the absolute value of i. MinI64 has no positive counterpart and
// is returned unchanged.
func (i I64) Abs() I64 {
	if i.hi < 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I64) Cmp(n I64) int {
	if i.hi > n.hi {
		return 1
	} else if i.hi < n.hi {
		return -1
	} else if i.lo > n.lo {
		return 1
	} else if i.lo < n.lo {
		return -1
	}
	return 0
}

func (i I64) Equal(n I64) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I64) NotEqual(n I64) bool {
	return i.hi != n.hi || i.lo != n.lo
}

func (i I64) GreaterThan(n I64) bool {
	return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
}

func (i I64) GreaterOrEqualTo(n I64) bool {
	return i.hi > n.hi || (i.hi == n.hi && i.lo >= n.lo)
}

func (i I64) LessThan(n I64) bool {
	return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
}

func (i I64) LessOrEqualTo(n I64) bool {
	return i.hi < n.hi || (i.hi == n.hi && i.lo <= n.lo)
}

func (i I64) And(n I64) (out I64) {
	out.hi = i.hi & n.hi
	out.lo = i.lo & n.lo
	return out
}

func (i I64) AndNot(n I64) (out I64) {
	out.hi = i.hi &^ n.hi
	out.lo = i.lo &^ n.lo
	return out
}

func (i I64) Or(n I64) (out I64) {
	out.hi = i.hi | n.hi
	out.lo = i.lo | n.lo
	return out
}

func (i I64) Xor(n I64) (out I64) {
	out.hi = i.hi ^ n.hi
	out.lo = i.lo ^ n.lo
	return out
}

func (i I64) Not() (out I64) {
	out.hi = ^i.hi
	out.lo = ^i.lo
	return out
}

// Lsh returns i shifted left by n bits. Shifts of 64 or more yield zero.
func (i I64) Lsh(n uint) I64 {
	return i.AsU64().Lsh(n).AsI64()
}

// Rsh returns i shifted right by n bits, replicating the sign bit. Shifts of
// 64 or more yield -1 for negative values and 0 otherwise.
func (i I64) Rsh(n uint) (v I64) {
	var fill int32
	if i.hi < 0 {
		fill = -1
	}

	if n == 0 {
		return i
	} else if n >= 64 {
		v.hi = fill
		v.lo = uint32(fill)
	} else if n >= 32 {
		v.lo = uint32(i.hi >> (n - 32))
		v.hi = fill
	} else {
		v.lo = (i.lo >> n) | (uint32(i.hi) << (32 - n))
		v.hi = i.hi >> n
	}
	return v
}

// Mul returns the product of two I64s.
//
// Overflow should wrap around, as per the Go spec.
func (i I64) Mul(n I64) I64 {
	neg := false
	if i.hi < 0 {
		i, neg = i.Neg(), !neg
	}
	if n.hi < 0 {
		n, neg = n.Neg(), !neg
	}

	r := i.AsU64().Mul(n.AsU64())
	if neg {
		r = zeroU64.Sub(r)
	}
	return r.AsI64()
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I64) Quo(by I64) I64 {
	neg := false
	if i.hi < 0 {
		i, neg = i.Neg(), !neg
	}
	if by.hi < 0 {
		by, neg = by.Neg(), !neg
	}

	q := i.AsU64().Quo(by.AsU64())
	if neg {
		q = zeroU64.Sub(q)
	}
	return q.AsI64()
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// I64 does not support big.Int.DivMod()-style Euclidean division.
func (i I64) QuoRem(by I64) (q, r I64) {
	q = i.Quo(by)
	r = i.Sub(q.Mul(by))
	return q, r
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go), so the sign of a non-zero result follows the dividend.
func (i I64) Rem(by I64) (r I64) {
	_, r = i.QuoRem(by)
	return r
}

func (i I64) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I64) UnmarshalText(bts []byte) (err error) {
	v, _, err := I64FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I64) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num64: i64 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := I64FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
