// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/validate"
	"github.com/redstar-bot/cclisp/internal/engine/task"
)

// (assert value type) or (assert value type default) converts value to an
// int, float or list. If that fails, default is returned when given.
// Other type names give ().
func assert(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 3)

	typ := common.String(v[1])

	var convert func(cell.I) cell.I

	switch typ {
	case "int":
		convert = integerOf
	case "float":
		convert = float
	case "list":
		convert = toList
	default:
		return pair.Null
	}

	var c cell.I

	err := task.Catch(func() {
		c = convert(list.New(v[0]))
	})
	if err == nil {
		return c
	}

	if len(v) == 3 { //nolint:gomnd
		return v[2]
	}

	panic("assertion error: " + task.Display(v[0]) + " is not a valid " + typ)
}
