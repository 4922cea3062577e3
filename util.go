package num64

// RandSource provides random words for RandU64 and RandI64. *math/rand.Rand
// satisfies it.
type RandSource interface {
	Uint32() uint32
}

// DifferenceU64 subtracts the smaller of a and b from the larger.
func DifferenceU64(a, b U64) U64 {
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return U64{}
}

func LargerU64(a, b U64) U64 {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerU64(a, b U64) U64 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceI64 subtracts the smaller of a and b from the larger. The result
// is returned as a U64 because the distance between MinI64 and MaxI64 does not
// fit in an I64.
func DifferenceI64(a, b I64) U64 {
	if a.LessThan(b) {
		return b.AsU64().Sub(a.AsU64())
	}
	return a.AsU64().Sub(b.AsU64())
}

func LargerI64(a, b I64) I64 {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerI64(a, b I64) I64 {
	if b.LessThan(a) {
		return b
	}
	return a
}
