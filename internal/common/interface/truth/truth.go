// Released under an MIT license. See LICENSE.

// Package truth defines the interface for cclisp types that have a truth value.
package truth

import (
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Cells without a truth value of
// their own (procedures, environments) are true.
func Value(c cell.I) bool {
	if c == nil {
		return false
	}

	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
