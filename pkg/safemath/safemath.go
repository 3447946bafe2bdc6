// Package safemath provides uint64 arithmetic that reports wrap-around instead of hiding it.
package safemath

import (
	"math/bits"

	"github.com/pkg/errors"
)

var ErrOverflow = errors.New("arithmetic overflow")

func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return lo, nil
}

// Inc adds one.
func Inc(a uint64) (uint64, error) {
	return Add(a, 1)
}

func Min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
