// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/redstar-bot/cclisp/internal/common/compare"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/interface/number"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// Numbers are summed, strings concatenated, and lists joined.
func add(args cell.I) cell.I {
	if args == pair.Null {
		return num.Int(0)
	}

	first := pair.Car(args)

	switch {
	case str.Is(first):
		var b strings.Builder

		for _, c := range list.Slice(args) {
			if !str.Is(c) {
				panic("can only concatenate string (not " + c.Name() + ") to string")
			}

			b.WriteString(str.To(c).String())
		}

		return str.New(b.String())
	case pair.Is(first):
		for _, c := range list.Slice(args) {
			if !pair.Is(c) {
				panic("can only concatenate list (not " + c.Name() + ") to list")
			}
		}

		return list.Join(list.Slice(args)...)
	}

	sum := num.Int(0)

	for ; args != pair.Null; args = pair.Cdr(args) {
		sum = num.Add(arith(sum), arith(pair.Car(args)))
	}

	return sum
}

func div(args cell.I) cell.I {
	v, args := validate.Variadic(args, 2, 2)

	quotient := num.Quo(arith(v[0]), arith(v[1]))

	for ; args != pair.Null; args = pair.Cdr(args) {
		quotient = num.Quo(arith(quotient), arith(pair.Car(args)))
	}

	return quotient
}

func floorDiv(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.FloorQuo(arith(v[0]), arith(v[1]))
}

func mod(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.Mod(arith(v[0]), arith(v[1]))
}

// Numbers are multiplied. A string or list times an integer is repeated.
func mul(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 1, 2)

	if len(v) == 2 { //nolint:gomnd
		if r := repeat(v[0], v[1]); r != nil {
			return r
		}

		if r := repeat(v[1], v[0]); r != nil {
			return r
		}
	}

	product := num.Int(1)

	for _, c := range append(v, list.Slice(rest)...) {
		product = num.Mul(arith(product), arith(c))
	}

	return product
}

func sub(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	if args == pair.Null {
		return num.Neg(arith(v[0]))
	}

	difference := v[0]

	for ; args != pair.Null; args = pair.Cdr(args) {
		difference = num.Sub(arith(difference), arith(pair.Car(args)))
	}

	return difference
}

// arith returns c as a number. Booleans count as 0 and 1.
func arith(c cell.I) number.I {
	n, ok := compare.Numeric(c)
	if !ok {
		panic(c.Name() + " cannot be used in a numeric context")
	}

	return n
}

func repeat(s, n cell.I) cell.I {
	if !num.Is(n) || num.To(n).Inexact() {
		return nil
	}

	times := integer.Int(n)
	if times < 0 {
		times = 0
	}

	switch {
	case str.Is(s):
		return str.New(strings.Repeat(str.To(s).String(), times))
	case pair.Is(s):
		elements := list.Slice(s)
		repeated := make([]cell.I, 0, len(elements)*times)

		for i := 0; i < times; i++ {
			repeated = append(repeated, elements...)
		}

		return list.New(repeated...)
	}

	return nil
}
