// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// (symbol? value) is true for symbols and for strings, which also name
// variables.
func isSymbol(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(sym.Is(v[0]) || str.Is(v[0]))
}

// (symbol text) returns the symbol spelled by text, lowercased as the
// reader would.
func makeSymbol(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.New(strings.ToLower(common.String(v[0])))
}
