package num64

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U64 is an unsigned 64-bit integer stored as two 32-bit words. All
// arithmetic is carried out on the words with 32-bit operations only.
type U64 struct {
	hi, lo uint32
}

func U64FromRaw(hi, lo uint32) U64 { return U64{hi: hi, lo: lo} }
func U64From32(v uint32) U64       { return U64{lo: v} }
func U64From16(v uint16) U64       { return U64{lo: uint32(v)} }
func U64From8(v uint8) U64         { return U64{lo: uint32(v)} }

// U64FromUint64 splits a native uint64 into words. It exists for interop with
// code that has native 64-bit integers; the arithmetic never needs it.
func U64FromUint64(v uint64) U64 {
	return U64{hi: uint32(v >> 32), lo: uint32(v)}
}

// U64FromString creates a U64 from a string. Overflow truncates to MaxU64
// and sets accurate to 'false'. Only decimal strings are currently supported.
func U64FromString(s string) (out U64, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num64: u64 string %q invalid", s)
	}
	out, accurate = U64FromBigInt(b)
	return out, accurate, nil
}

// U64FromBigInt creates a U64 from a big.Int. Overflow truncates to MaxU64
// and sets accurate to 'false'. Negative numbers return 0 and 'false'.
func U64FromBigInt(v *big.Int) (out U64, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U64{}, true
		case 1:
			w := uint64(words[0])
			return U64{hi: uint32(w >> 32), lo: uint32(w)}, true
		default:
			return MaxU64, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U64{}, true
		case 1:
			return U64{lo: uint32(words[0])}, true
		case 2:
			return U64{hi: uint32(words[1]), lo: uint32(words[0])}, true
		default:
			return MaxU64, false
		}

	default:
		panic("num64: unsupported bit size")
	}
}

func U64FromFloat32(f float32) (out U64, inRange bool) {
	return U64FromFloat64(float64(f))
}

// U64FromFloat64 creates a U64 from a float64. Any fractional portion
// will be truncated towards zero. Floats outside the bounds of a U64
// are clamped and inRange is set to false.
//
// NaN is treated as 0, inRange is set to false.
func U64FromFloat64(f float64) (out U64, inRange bool) {
	if f == 0 {
		return U64{}, true

	} else if f != f { // (f != f) == NaN
		return U64{}, false

	} else if f < 0 {
		return U64{}, false

	} else if f < wrapUint64Float {
		hi, lo := splitFloat(f)
		return U64{hi: hi, lo: lo}, true

	} else {
		return MaxU64, false
	}
}

// RandU64 generates an unsigned 64-bit random integer from an external source.
func RandU64(source RandSource) (out U64) {
	return U64{hi: source.Uint32(), lo: source.Uint32()}
}

func (u U64) IsZero() bool { return u == zeroU64 }

// Raw returns access to the U64 as a pair of uint32s. See U64FromRaw() for
// the counterpart.
func (u U64) Raw() (hi, lo uint32) { return u.hi, u.lo }

// String returns the decimal representation of u. Nine digits are produced
// per division so values above 32 bits need at most three passes through
// QuoRem.
func (u U64) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(uint64(u.lo), 10)
	}

	var buf [20]byte
	pos := len(buf)
	for {
		q, r := u.QuoRem(decimalChunk)
		chunk := r.lo
		if q.IsZero() {
			for chunk > 0 {
				pos--
				buf[pos] = byte('0' + chunk%10)
				chunk /= 10
			}
			break
		}
		for i := 0; i < 9; i++ {
			pos--
			buf[pos] = byte('0' + chunk%10)
			chunk /= 10
		}
		u = q
	}
	return string(buf[pos:])
}

func (u U64) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

func (u U64) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < 1 {
			words = make([]big.Word, 1)
		}
		words = words[:1]
		words[0] = big.Word(uint64(u.hi)<<32 | uint64(u.lo))
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < 2 {
			words = make([]big.Word, 2)
		}
		words = words[:2]
		words[0] = big.Word(u.lo)
		words[1] = big.Word(u.hi)
		b.SetBits(words)

	default:
		b.SetUint64(uint64(u.hi))
		b.Lsh(b, 32)
		var lo big.Int
		lo.SetUint64(uint64(u.lo))
		b.Add(b, &lo)
	}
}

func (u U64) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U64) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsFloat64 converts u to the nearest float64. Both word conversions are
// exact, so the single rounding in the final addition matches a native
// uint64 to float64 conversion.
func (u U64) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return float64(u.hi)*wrapUint32Float + float64(u.lo)
}

// AsI64 performs a direct cast of a U64 to an I64, which will interpret it
// as a two's complement value.
func (u U64) AsI64() I64 {
	return I64{hi: int32(u.hi), lo: u.lo}
}

// IsI64 reports whether u can be represented in an I64.
func (u U64) IsI64() bool {
	return u.hi&signBit == 0
}

// AsUint32 truncates the U64 to fit in a uint32. Values outside the range
// will over/underflow. See IsUint32() if you want to check before you convert.
func (u U64) AsUint32() uint32 {
	return u.lo
}

// IsUint32 reports whether u can be represented as a uint32.
func (u U64) IsUint32() bool {
	return u.hi == 0
}

// AsUint64 joins the words into a native uint64.
func (u U64) AsUint64() uint64 {
	return uint64(u.hi)<<32 | uint64(u.lo)
}

func (u U64) Inc() (v U64) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U64) Dec() (v U64) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U64) Add(n U64) (v U64) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if v.lo < u.lo {
		v.hi++
	}
	return v
}

func (u U64) Sub(n U64) (v U64) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < n.lo {
		v.hi--
	}
	return v
}

func (u U64) Cmp(n U64) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U64) Equal(n U64) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U64) NotEqual(n U64) bool {
	return u.hi != n.hi || u.lo != n.lo
}

func (u U64) GreaterThan(n U64) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U64) GreaterOrEqualTo(n U64) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U64) LessThan(n U64) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U64) LessOrEqualTo(n U64) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U64) And(v U64) (out U64) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U64) AndNot(v U64) (out U64) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U64) Or(v U64) (out U64) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U64) Xor(v U64) (out U64) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U64) Not() (out U64) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Lsh returns u shifted left by n bits. Shifts of 64 or more yield zero.
func (u U64) Lsh(n uint) (v U64) {
	if n == 0 {
		return u
	} else if n >= 64 {
		return v
	} else if n >= 32 {
		v.hi = u.lo << (n - 32)
		v.lo = 0
	} else {
		v.hi = (u.hi << n) | (u.lo >> (32 - n))
		v.lo = u.lo << n
	}
	return v
}

// Rsh returns u shifted right by n bits, filling with zeros. Shifts of 64 or
// more yield zero.
func (u U64) Rsh(n uint) (v U64) {
	if n == 0 {
		return u
	} else if n >= 64 {
		return v
	} else if n >= 32 {
		v.lo = u.hi >> (n - 32)
		v.hi = 0
	} else {
		v.lo = (u.lo >> n) | (u.hi << (32 - n))
		v.hi = u.hi >> n
	}
	return v
}

// Mul returns the product of u and n, wrapping on overflow. The hi*hi term
// lands entirely above bit 63, so it is never computed.
func (u U64) Mul(n U64) (dest U64) {
	dest.hi, dest.lo = mul32to64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U64) Quo(by U64) (q U64) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
func (u U64) QuoRem(by U64) (q, r U64) {
	if by.hi == 0 && by.lo == 0 {
		panic("num64: division by zero")
	}

	if u.hi|by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem64bin(u, by)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u U64) Rem(by U64) (r U64) {
	_, r = u.QuoRem(by)
	return r
}

func (u U64) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros32(u.lo)) + 32
	}
	return uint(bits.LeadingZeros32(u.hi))
}

func (u U64) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros32(u.hi)) + 32
	}
	return uint(bits.TrailingZeros32(u.lo))
}

// BitLen returns the number of bits required to represent u.
func (u U64) BitLen() int {
	return 64 - int(u.LeadingZeros())
}

// Bit returns the value of the i'th bit of u. The bit index must be 0 <= i < 64.
func (u U64) Bit(i int) uint {
	if i < 0 || i >= 64 {
		panic("num64: bit out of range")
	}
	if i >= 32 {
		return uint((u.hi >> uint(i-32)) & 1)
	}
	return uint((u.lo >> uint(i)) & 1)
}

// SetBit returns a U64 with u's i'th bit set to b (0 or 1). If b is not 0 or
// 1, SetBit will panic. If i < 0 or i >= 64, SetBit will panic.
func (u U64) SetBit(i int, b uint) (out U64) {
	if i < 0 || i >= 64 {
		panic("num64: bit out of range")
	}
	out = u
	switch b {
	case 0:
		if i >= 32 {
			out.hi &^= 1 << uint(i-32)
		} else {
			out.lo &^= 1 << uint(i)
		}
	case 1:
		if i >= 32 {
			out.hi |= 1 << uint(i-32)
		} else {
			out.lo |= 1 << uint(i)
		}
	default:
		panic("num64: bit value not 0 or 1")
	}
	return out
}

func (u U64) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U64) UnmarshalText(bts []byte) (err error) {
	v, _, err := U64FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U64) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num64: u64 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := U64FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
