// Released under an MIT license. See LICENSE.

package pair

import "github.com/redstar-bot/cclisp/internal/common/interface/cell"

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	if c == nil {
		panic("not a " + name)
	}

	panic(c.Name() + " is not a " + name)
}
