// Released under an MIT license. See LICENSE.

// Package number defines the interface for cclisp's numeric types.
package number

import (
	"github.com/nukata/goarith"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
)

// I (number) is anything that can be treated as a number in cclisp.
type I interface {
	Float64() float64
	Inexact() bool
	Number() goarith.Number
}

type number = I

// Is returns true if c can be used in a numeric context.
func Is(c cell.I) bool {
	_, ok := c.(number)

	return ok
}

// To returns the number value for a cell, if possible.
func To(c cell.I) number {
	n, ok := c.(number)
	if !ok {
		// Not all cell types can be treated as numbers.
		panic(c.Name() + " cannot be used in a numeric context")
	}

	return n
}

// Float returns the float64 value for a cell, if possible.
func Float(c cell.I) float64 {
	return To(c).Float64()
}
