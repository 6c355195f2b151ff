// Released under an MIT license. See LICENSE.

// Package integer converts a cclisp cell to an int64 value, if possible.
package integer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/number"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
)

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) int64 {
	if b, ok := c.(*boolean.T); ok {
		if b.Bool() {
			return 1
		}

		return 0
	}

	if n, ok := c.(number.I); ok {
		f := n.Float64()
		if !n.Inexact() || f == math.Trunc(f) {
			if i, err := strconv.ParseInt(fmt.Sprint(n.Number()), 10, 64); err == nil {
				return i
			}

			if f >= math.MinInt64 && f <= math.MaxInt64 {
				return int64(f)
			}
		}

		panic(c.Name() + " does not have an integer value")
	}

	if s, ok := c.(*sym.T); ok {
		i, err := strconv.ParseInt(s.String(), 10, 64)
		if err == nil {
			return i
		}
	}

	panic(c.Name() + " cannot be converted to an integer value")
}

// Int returns the int value for a cell, if possible.
func Int(c cell.I) int {
	return int(Value(c))
}
