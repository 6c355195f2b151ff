// Released under an MIT license. See LICENSE.

// Package pair provides cclisp's cons cell type.
package pair

import (
	"strings"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/literal"
	"github.com/redstar-bot/cclisp/internal/common/interface/truth"
)

const name = "list"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list
	// and as the result of forms that produce no value.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Bool returns the boolean value of the pair p.
func (p *pair) Bool() bool {
	return p != Null
}

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return p == c
	}

	o, ok := c.(*pair)
	if !ok {
		return false
	}

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns the literal representation of the pair p.
// The form (quote "text") is written the way the reader accepts it: "text".
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	if q, ok := quoted(p); ok {
		return literal.String(q)
	}

	return p.join(literal.String)
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	if p == Null {
		return "()"
	}

	return p.join(display)
}

func (p *pair) join(f func(cell.I) string) string {
	var b strings.Builder

	b.WriteString("(")

	for c := cell.I(p); c != Null; {
		if c != cell.I(p) {
			b.WriteString(" ")
		}

		t, ok := c.(*pair)
		if !ok {
			// Improper tail.
			b.WriteString(". ")
			b.WriteString(f(c))

			break
		}

		b.WriteString(f(t.car))

		c = t.cdr
	}

	b.WriteString(")")

	return b.String()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.I) cell.I {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

func display(c cell.I) string {
	if c == nil {
		return "()"
	}

	if s, ok := c.(common.Stringer); ok {
		return s.String()
	}

	return c.Name()
}

func quoted(p *pair) (cell.I, bool) {
	s, ok := p.car.(common.Stringer)
	if !ok || s.String() != "quote" || p.car.Name() != "symbol" {
		return nil, false
	}

	rest, ok := p.cdr.(*pair)
	if !ok || rest == Null || rest.cdr != Null || rest.car.Name() != "string" {
		return nil, false
	}

	return rest.car, true
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// The pair type has a truth value.
	_ = truth.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
