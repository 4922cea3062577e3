package main

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/shabbyrobe/go-num64"
)

// Finds the multiply-and-shift replacement a compiler would use for dividing
// a uint32 by a constant. The 64-bit intermediate products come from
// num64.U64, so this doubles as a workout for Lsh, QuoRem and Mul.

func runRecip(w io.Writer, numerStr, denomStr string) error {
	numer, err := strconv.ParseUint(numerStr, 10, 32)
	if err != nil {
		return err
	}
	denom, err := strconv.ParseUint(denomStr, 10, 32)
	if err != nil {
		return err
	}
	if denom < 2 {
		return fmt.Errorf("calc: denominator must be at least 2")
	}

	recip, shift, add, err := divFindMulU32(uint32(denom))
	if err != nil {
		return err
	}
	result := divMulU32(uint32(numer), recip, shift, add)

	fmt.Fprintf(w, "%d / %d == %d\n", numer, denom, result)
	fmt.Fprintf(w, "recip:%#x shift:%d 33bit:%v\n", recip, shift, add)
	return nil
}

func divFindMulU32(denom uint32) (recip uint32, shift uint, add bool, err error) {
	var floorLog2d = uint(31 - bits.LeadingZeros32(denom))

	if denom&(denom-1) == 0 {
		// Powers of two reduce to a plain shift; with a zero multiplier the
		// 'add' path below halves the numerator once, so shift one less.
		return 0, floorLog2d - 1, true, nil
	}

	var proposedM, rem = num64.U64From32(1).
		Lsh(floorLog2d).
		Lsh(32). // move into the hi word
		QuoRem(num64.U64From32(denom))

	if !proposedM.IsUint32() {
		return 0, 0, false, fmt.Errorf("calc: proposedM overflows 32 bit, found %s", proposedM)
	}
	if !rem.IsUint32() {
		return 0, 0, false, fmt.Errorf("calc: remainder overflows 32 bit, found %s", rem)
	}
	var proposedM32, rem32 = proposedM.AsUint32(), rem.AsUint32()

	var e = denom - rem32
	if e < 1<<floorLog2d {
		shift = floorLog2d
	} else {
		// 33 bit version:
		proposedM32 += proposedM32
		twiceRem := rem32 + rem32
		if twiceRem >= denom || twiceRem < rem32 {
			proposedM32 += 1
		}
		shift = floorLog2d
		add = true
	}

	recip = 1 + proposedM32
	return recip, shift, add, nil
}

func divMulU32(numer, recip uint32, shift uint, add bool) uint32 {
	q := num64.U64From32(numer).
		Mul(num64.U64From32(recip)).
		Rsh(32).
		AsUint32()

	if add {
		t := ((numer - q) >> 1) + q
		return t >> shift
	}
	return q >> shift
}
