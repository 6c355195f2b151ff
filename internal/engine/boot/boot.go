// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping cclisp.
package boot

import (
	_ "embed" // Blank import required by embed.
	"strings"
	"sync"
	"time"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/struct/hash"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
	"github.com/redstar-bot/cclisp/internal/engine/commands"
	"github.com/redstar-bot/cclisp/internal/engine/task"
	"github.com/redstar-bot/cclisp/internal/reader"
)

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

//nolint:gochecknoglobals
var registered sync.Once

type options struct {
	budget  time.Duration
	locale  string
	methods map[string]map[string]task.Method
	scratch *hash.T
}

// Option configures the env built by Standard.
type Option func(*options)

// Budget sets the maximum runtime for the env and everything evaluated in it.
func Budget(d time.Duration) Option {
	return func(o *options) {
		o.budget = d
	}
}

// Locale sets the default locale used to format numbers and times.
func Locale(l string) Option {
	return func(o *options) {
		o.locale = l
	}
}

// Methods adds table as methods for values of type typ. Only expressions
// evaluated in the env built by Standard, or beneath it, see them.
func Methods(typ string, table map[string]task.Method) Option {
	return func(o *options) {
		if o.methods == nil {
			o.methods = map[string]map[string]task.Method{}
		}

		o.methods[typ] = table
	}
}

// Scratch sets the storage used by getvar and setvar.
func Scratch(h *hash.T) Option {
	return func(o *options) {
		o.scratch = h
	}
}

// Placeholders returns the names the embedding layer is expected to
// override and their default values.
func Placeholders() map[string]cell.I {
	return map[string]cell.I{
		"argstring":   str.New(""),
		"args":        pair.Null,
		"authorname":  str.New(""),
		"authornick":  str.New(""),
		"output":      str.New(""),
		"usermention": str.New(""),
		"username":    str.New(""),
		"usernick":    str.New(""),
	}
}

// Scratchpad returns getvar and setvar procedures backed by h.
// Names are case-insensitive.
func Scratchpad(h *hash.T) map[string]cell.I {
	return map[string]cell.I{
		"getvar": task.NewBuiltin("getvar", func(args cell.I) cell.I {
			v := validate.Fixed(args, 1, 1)

			k := strings.ToLower(common.String(v[0]))

			r := h.Get(k)
			if r == nil {
				panic("No such variable " + k + ".")
			}

			return r.Get()
		}),
		"setvar": task.NewBuiltin("setvar", func(args cell.I) cell.I {
			v := validate.Fixed(args, 2, 2)

			h.Set(strings.ToLower(common.String(v[0])), v[1])

			return str.New("")
		}),
	}
}

// Script returns the boot script for cclisp.
func Script() string {
	return script
}

// Standard returns a root env holding the standard library. Names in
// overrides replace the defaults.
func Standard(overrides map[string]cell.I, opts ...Option) *env.T {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	registered.Do(func() {
		task.Register(str.New("").Name(), commands.StringMethods())
		task.Register(pair.Null.Name(), commands.ListMethods())
	})

	if o.scratch == nil {
		o.scratch = hash.New()
	}

	e := env.Root(nil, o.budget)

	for typ, table := range o.methods {
		task.Extend(e, typ, table)
	}

	for k, fn := range commands.Functions() {
		e.Define(k, task.NewBuiltin(k, fn))
	}

	for k, fn := range commands.HigherOrder() {
		e.Define(k, task.NewHigherOrder(k, fn))
	}

	for k, fn := range commands.Localized(o.locale) {
		e.Define(k, task.NewBuiltin(k, fn))
	}

	for _, m := range []map[string]cell.I{
		commands.Constants(),
		Placeholders(),
		Scratchpad(o.scratch),
	} {
		for k, v := range m {
			e.Define(k, v)
		}
	}

	forms, err := reader.ParseAllNamed("boot.lisp", script)
	if err != nil {
		panic(err.Error())
	}

	for _, c := range forms {
		if err := task.Catch(func() { task.Eval(c, e) }); err != nil {
			panic("boot: " + err.Error())
		}
	}

	for k, v := range overrides {
		e.Define(k, v)
	}

	return e
}
