// Released under an MIT license. See LICENSE.

// Package compare orders and searches cclisp values.
package compare

import (
	"strings"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/number"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
)

// Cmp compares a and b and returns -1, 0, or +1. Numbers (and booleans)
// compare numerically, strings and symbols lexically, and lists element
// by element. Any other pairing panics.
func Cmp(a, b cell.I) int {
	if x, ok := Numeric(a); ok {
		if y, ok := Numeric(b); ok {
			return num.Cmp(x, y)
		}
	}

	if x, ok := text(a); ok {
		if y, ok := text(b); ok {
			return strings.Compare(x, y)
		}
	}

	if pair.Is(a) && pair.Is(b) {
		for a != pair.Null && b != pair.Null {
			if c := Cmp(pair.Car(a), pair.Car(b)); c != 0 {
				return c
			}

			a, b = pair.Cdr(a), pair.Cdr(b)
		}

		switch {
		case a == pair.Null && b == pair.Null:
			return 0
		case a == pair.Null:
			return -1
		}

		return 1
	}

	panic("cannot compare " + a.Name() + " with " + b.Name())
}

// Contains returns true if item is an element of the list c or, when c is
// a string, a substring of it.
func Contains(c, item cell.I) bool {
	if s, ok := text(c); ok {
		t, ok := text(item)
		if !ok {
			panic("'in <string>' requires a string, not " + item.Name())
		}

		return strings.Contains(s, t)
	}

	if !pair.Is(c) {
		panic(c.Name() + " is not a container")
	}

	for ; c != pair.Null; c = pair.Cdr(c) {
		if Equal(pair.Car(c), item) {
			return true
		}
	}

	return false
}

// Equal is cell equality that also treats booleans as the numbers 0 and 1
// and lets a string equal a symbol with the same text.
func Equal(a, b cell.I) bool {
	if a.Equal(b) {
		return true
	}

	if x, ok := Numeric(a); ok {
		if y, ok := Numeric(b); ok {
			return num.Cmp(x, y) == 0
		}
	}

	if x, ok := text(a); ok {
		if y, ok := text(b); ok {
			return x == y
		}
	}

	return false
}

// Numeric returns c as a number. Booleans are the numbers 0 and 1.
func Numeric(c cell.I) (number.I, bool) {
	if b, ok := c.(*boolean.T); ok {
		if b.Bool() {
			return num.To(num.Int(1)), true
		}

		return num.To(num.Int(0)), true
	}

	n, ok := c.(number.I)

	return n, ok
}

func text(c cell.I) (string, bool) {
	switch {
	case str.Is(c):
		return str.To(c).String(), true
	case sym.Is(c):
		return sym.To(c).String(), true
	}

	return "", false
}
