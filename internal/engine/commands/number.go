// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// Largest argument factorial accepts.
const maxFactorial = 5000

// Constants returns a mapping of names to constant values.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"e":   num.Float(math.E),
		"inf": num.Float(math.Inf(1)),
		"nan": num.Float(math.NaN()),
		"pi":  num.Float(math.Pi),
		"tau": num.Float(2 * math.Pi), //nolint:gomnd
	}
}

// MathFunctions returns a mapping of names to math functions.
func MathFunctions() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"acos":      float1(math.Acos),
		"asin":      float1(math.Asin),
		"atan":      float1(math.Atan),
		"atan2":     float2(math.Atan2),
		"ceil":      integral(math.Ceil),
		"cos":       float1(math.Cos),
		"degrees":   float1(func(x float64) float64 { return x * 180 / math.Pi }),
		"exp":       float1(math.Exp),
		"factorial": factorial,
		"floor":     integral(math.Floor),
		"gcd":       gcd,
		"hypot":     float2(math.Hypot),
		"isinf":     isInf,
		"isnan":     isNaN,
		"log":       logarithm,
		"log10":     float1(math.Log10),
		"log2":      float1(math.Log2),
		"pow":       float2(math.Pow),
		"radians":   float1(func(x float64) float64 { return x * math.Pi / 180 }),
		"sin":       float1(math.Sin),
		"sqrt":      float1(math.Sqrt),
		"tan":       float1(math.Tan),
		"trunc":     integral(math.Trunc),
	}
}

func abs(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n := arith(v[0])
	if num.Cmp(n, num.To(num.Int(0))) < 0 {
		return num.Neg(n)
	}

	if boolean.Is(v[0]) {
		return n.(cell.I)
	}

	return v[0]
}

func factorial(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n := integer.Value(v[0])
	if n < 0 {
		panic("factorial() not defined for negative values")
	}

	if n > maxFactorial {
		panic("factorial() argument too large")
	}

	return num.Big(new(big.Int).MulRange(1, n))
}

func float(args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)
	if len(v) == 0 {
		return num.Float(0)
	}

	if str.Is(v[0]) {
		s := strings.TrimSpace(str.To(v[0]).String())

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			panic("could not convert string to float: '" + s + "'")
		}

		return num.Float(f)
	}

	return num.Float(arith(v[0]).Float64())
}

func gcd(args cell.I) cell.I {
	g := new(big.Int)

	for _, c := range validate.Fixed(args, 0, 2) {
		g.GCD(nil, nil, g, new(big.Int).Abs(exact(c)))
	}

	return num.Big(g)
}

// (int value) or (int string base)
func integerOf(args cell.I) cell.I {
	v := validate.Fixed(args, 0, 2)
	if len(v) == 0 {
		return num.Int(0)
	}

	if str.Is(v[0]) {
		base := 10
		if len(v) == 2 { //nolint:gomnd
			base = integer.Int(v[1])
		}

		s := strings.TrimSpace(str.To(v[0]).String())

		i, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), base)
		if !ok {
			panic("invalid literal for int() with base " + strconv.Itoa(base) + ": '" + s + "'")
		}

		return num.Big(i)
	}

	if len(v) == 2 { //nolint:gomnd
		panic("int() can't convert non-string with explicit base")
	}

	n := arith(v[0])
	if n.Inexact() {
		return whole(math.Trunc(n.Float64()))
	}

	return n.(cell.I)
}

func isInf(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(math.IsInf(arith(v[0]).Float64(), 0))
}

func isNaN(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(math.IsNaN(arith(v[0]).Float64()))
}

func isNumber(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(num.Is(v[0]))
}

// (log x) or (log x base)
func logarithm(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	x := domain(math.Log, arith(v[0]).Float64())
	if len(v) == 1 {
		return num.Float(x)
	}

	b := domain(math.Log, arith(v[1]).Float64())
	if b == 0 {
		panic("division by zero")
	}

	return num.Float(x / b)
}

// (round x) rounds half to even and gives an int.
// (round x digits) keeps digits places and gives a number of the same kind as x.
func round(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	n := arith(v[0])

	if len(v) == 1 {
		if !n.Inexact() {
			return n.(cell.I)
		}

		return whole(math.RoundToEven(n.Float64()))
	}

	digits := integer.Value(v[1])
	if !n.Inexact() && digits >= 0 {
		return n.(cell.I)
	}

	p := math.Pow(10, float64(digits)) //nolint:gomnd
	r := math.RoundToEven(n.Float64()*p) / p

	if n.Inexact() {
		return num.Float(r)
	}

	return whole(r)
}

func domain(f func(float64) float64, x float64) float64 {
	r := f(x)
	if math.IsNaN(r) && !math.IsNaN(x) {
		panic("math domain error")
	}

	return r
}

func float1(f func(float64) float64) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return num.Float(domain(f, arith(v[0]).Float64()))
	}
}

func float2(f func(float64, float64) float64) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		x, y := arith(v[0]).Float64(), arith(v[1]).Float64()

		r := f(x, y)
		if math.IsNaN(r) && !math.IsNaN(x) && !math.IsNaN(y) {
			panic("math domain error")
		}

		return num.Float(r)
	}
}

func integral(f func(float64) float64) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		n := arith(v[0])
		if !n.Inexact() {
			return n.(cell.I)
		}

		return whole(f(n.Float64()))
	}
}

// whole converts an integral float to an exact num.
func whole(f float64) cell.I {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic("cannot convert float " + strconv.FormatFloat(f, 'g', -1, 64) + " to integer")
	}

	i, _ := big.NewFloat(f).Int(nil)

	return num.Big(i)
}
