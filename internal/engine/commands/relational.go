// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/redstar-bot/cclisp/internal/common/compare"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/truth"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

func eq(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	return boolean.Bool(chain(append(v, list.Slice(rest)...), func(a, b cell.I) bool {
		return compare.Equal(a, b)
	}))
}

func ge(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c >= 0 })
}

func gt(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c > 0 })
}

func le(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c <= 0 })
}

func lt(args cell.I) cell.I {
	return ordered(args, func(c int) bool { return c < 0 })
}

func ne(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(!compare.Equal(v[0], v[1]))
}

func not(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}

// Booleans give a boolean. Integers give their bitwise exclusive or.
func xor(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	if boolean.Is(v[0]) && boolean.Is(v[1]) {
		return boolean.Bool(truth.Value(v[0]) != truth.Value(v[1]))
	}

	a, b := exact(v[0]), exact(v[1])

	return num.Big(new(big.Int).Xor(a, b))
}

func chain(v []cell.I, ok func(a, b cell.I) bool) bool {
	for i := 1; i < len(v); i++ {
		if !ok(v[i-1], v[i]) {
			return false
		}
	}

	return true
}

func exact(c cell.I) *big.Int {
	n := arith(c)
	if n.Inexact() {
		panic("unsupported operand type: float")
	}

	return n.(*num.T).Big()
}

func ordered(args cell.I, ok func(int) bool) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	return boolean.Bool(chain(append(v, list.Slice(rest)...), func(a, b cell.I) bool {
		return ok(compare.Cmp(a, b))
	}))
}
