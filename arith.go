package num64

// mul32to64 returns the full 64-bit product of u and v using only 32-bit
// multiplies. Each operand is split into 16-bit halves so no partial product
// can exceed 32 bits.
func mul32to64(u, v uint32) (hi, lo uint32) {
	var (
		u0 = u & 0xffff
		u1 = u >> 16
		v0 = v & 0xffff
		v1 = v >> 16

		ll = u0 * v0
		lh = u0 * v1
		hl = u1 * v0
		hh = u1 * v1
	)

	mid := lh + hl
	var midCarry uint32
	if mid < lh { // the cross terms overflowed; that bit is worth 1<<48
		midCarry = 1 << 16
	}

	lo = ll + (mid << 16)
	var carry uint32
	if lo < ll {
		carry = 1
	}

	hi = hh + (mid >> 16) + midCarry + carry
	return hi, lo
}

// quorem64bin is shift-subtract long division, one bit per iteration. The
// caller guarantees by is not zero. Only the significant bits of u are
// walked; leading zeros would shift zeros into the remainder and clear
// quotient bits that are already clear.
func quorem64bin(u, by U64) (q, r U64) {
	for i := 63 - int(u.LeadingZeros()); i >= 0; i-- {
		// {{{ r = r.Lsh(1) | bit i of u
		r.hi = (r.hi << 1) | (r.lo >> 31)
		r.lo = r.lo << 1
		if i >= 32 {
			r.lo |= (u.hi >> uint(i-32)) & 1
		} else {
			r.lo |= (u.lo >> uint(i)) & 1
		}
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(r.hi < by.hi || (r.hi == by.hi && r.lo < by.lo)) {
			r = r.Sub(by)
			if i >= 32 {
				q.hi |= 1 << uint(i-32)
			} else {
				q.lo |= 1 << uint(i)
			}
		}
	}
	return q, r
}
