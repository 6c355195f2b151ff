// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to primitive procedures.
package validate

import (
	"fmt"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
)

// Variadic returns between min and max leading arguments and the remainder.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				s := Count(min, "argument", "s")
				panic(fmt.Sprintf("expected %s, passed %d", s, i))
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed returns between min and max arguments and panics if there are more.
func Fixed(actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(actual, min, max)
	if rest != pair.Null {
		s := Count(max, "argument", "s")
		n := int(list.Length(actual))

		panic(fmt.Sprintf("expected %s, passed %d", s, n))
	}

	return expected
}

// Count returns n and the label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
