// Released under an MIT license. See LICENSE.

// Package num provides cclisp's numeric type.
// Integers are exact and grow as needed; floats are Go float64 values.
package num

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/nukata/goarith"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/literal"
	"github.com/redstar-bot/cclisp/internal/common/interface/number"
	"github.com/redstar-bot/cclisp/internal/common/interface/truth"
)

const (
	exactName   = "int"
	inexactName = "float"
)

// T (num) is either an exact integer or an inexact float.
type T struct {
	exact goarith.Number // Nil for floats.
	float float64
}

type num = T

// Big creates an exact num from the *big.Int i.
func Big(i *big.Int) cell.I {
	return &num{exact: goarith.AsNumber(i)}
}

// Float creates an inexact num from the float64 f.
func Float(f float64) cell.I {
	return &num{float: f}
}

// Int creates an exact num from the integer i.
func Int(i int64) cell.I {
	return Big(big.NewInt(i))
}

// New creates a new num cell from a string.
func New(s string) cell.I {
	c, ok := Parse(s)
	if !ok {
		panic("'" + s + "' is not a valid number")
	}

	return c
}

// Parse tries to read s as an integer and then as a float. A float too
// large to represent is infinite.
func Parse(s string) (cell.I, bool) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return Big(i), true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return Float(f), true
	}

	return nil, false
}

// Bool returns the boolean value of the num n.
func (n *num) Bool() bool {
	if n.exact == nil {
		return n.float != 0
	}

	return n.Big().Sign() != 0
}

// Equal returns true if c is a number with the same value as the num n.
func (n *num) Equal(c cell.I) bool {
	o, ok := c.(number.I)

	return ok && Cmp(n, o) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	if n.exact == nil {
		return inexactName
	}

	return exactName
}

// String returns the text of the num n.
func (n *num) String() string {
	if n.exact != nil {
		return fmt.Sprint(n.exact)
	}

	return formatFloat(n.float)
}

// Methods specific to num.

// Big returns the value of an exact num as a *big.Int.
// Floats are truncated.
func (n *num) Big() *big.Int {
	if n.exact == nil {
		i, _ := big.NewFloat(n.float).Int(nil)

		return i
	}

	i, ok := new(big.Int).SetString(fmt.Sprint(n.exact), 10)
	if !ok {
		panic("corrupt integer " + fmt.Sprint(n.exact))
	}

	return i
}

// Float64 returns the value of the num n as a float64.
func (n *num) Float64() float64 {
	if n.exact == nil {
		return n.float
	}

	f, _ := new(big.Float).SetInt(n.Big()).Float64()

	return f
}

// Inexact returns true if the num n is a float.
func (n *num) Inexact() bool {
	return n.exact == nil
}

// Number returns the value of the num n as a goarith.Number.
func (n *num) Number() goarith.Number {
	if n.exact == nil {
		return goarith.AsNumber(n.float)
	}

	return n.exact
}

// Arithmetic.

// Add returns a + b.
func Add(a, b number.I) cell.I {
	if a.Inexact() || b.Inexact() {
		return Float(a.Float64() + b.Float64())
	}

	return &num{exact: a.Number().Add(b.Number())}
}

// Cmp compares a and b and returns -1, 0, or +1.
func Cmp(a, b number.I) int {
	if a.Inexact() || b.Inexact() {
		x, y := a.Float64(), b.Float64()

		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}

		return 0
	}

	return a.Number().Cmp(b.Number())
}

// FloorQuo returns a divided by b, rounded towards negative infinity.
func FloorQuo(a, b number.I) cell.I {
	zero(b)

	if a.Inexact() || b.Inexact() {
		return Float(math.Floor(a.Float64() / b.Float64()))
	}

	q, _ := floorQuoRem(bigOf(a), bigOf(b))

	return Big(q)
}

// Mod returns the remainder of a divided by b with the sign of b.
func Mod(a, b number.I) cell.I {
	zero(b)

	if a.Inexact() || b.Inexact() {
		x, y := a.Float64(), b.Float64()

		m := math.Mod(x, y)
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}

		return Float(m)
	}

	_, m := floorQuoRem(bigOf(a), bigOf(b))

	return Big(m)
}

// Mul returns a * b.
func Mul(a, b number.I) cell.I {
	if a.Inexact() || b.Inexact() {
		return Float(a.Float64() * b.Float64())
	}

	return &num{exact: a.Number().Mul(b.Number())}
}

// Neg returns -a.
func Neg(a number.I) cell.I {
	return Sub(To(Int(0)), a)
}

// Quo returns a divided by b. The result is always a float.
func Quo(a, b number.I) cell.I {
	zero(b)

	return Float(a.Float64() / b.Float64())
}

// Sub returns a - b.
func Sub(a, b number.I) cell.I {
	if a.Inexact() || b.Inexact() {
		return Float(a.Float64() - b.Float64())
	}

	return &num{exact: a.Number().Sub(b.Number())}
}

func bigOf(n number.I) *big.Int {
	if t, ok := n.(*num); ok {
		return t.Big()
	}

	return big.NewInt(int64(n.Float64()))
}

func floorQuoRem(x, y *big.Int) (*big.Int, *big.Int) {
	q, m := new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, y)
	}

	return q, m
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	case f == math.Trunc(f) && math.Abs(f) < 1e16:
		return strconv.FormatFloat(f, 'f', 1, 64)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".en") {
		return s
	}

	return s + ".0"
}

func zero(n number.I) {
	if n.Float64() == 0 {
		panic("division by zero")
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a number.
	_ = number.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
