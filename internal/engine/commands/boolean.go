// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/truth"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

func isBoolean(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(boolean.Is(v[0]))
}

// (bool value) returns the truth value of value. Strings spelling a
// boolean literal, such as "yes" or "off", give that boolean.
func makeBoolean(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if str.Is(v[0]) {
		if b, ok := boolean.Parse(str.To(v[0]).String()); ok {
			return b
		}
	}

	return boolean.Bool(truth.Value(v[0]))
}
