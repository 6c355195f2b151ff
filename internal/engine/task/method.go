// Released under an MIT license. See LICENSE.

package task

import (
	"sort"
	"strings"
	"sync"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
)

// Method is a named operation on values of one type. Opts holds the
// values passed as :key value pairs.
type Method func(self, args cell.I, opts map[string]cell.I) cell.I

// Key under which per-env method tables are attached.
const attachment = "methods"

//nolint:gochecknoglobals
var (
	methods  = map[string]map[string]Method{}
	methodsl = &sync.RWMutex{}
)

// table holds the methods added to one env by Extend.
type table struct {
	owner *env.T
	types map[string]map[string]Method
}

// Equal returns true if c is the same table as t.
func (t *table) Equal(c cell.I) bool {
	o, ok := c.(*table)

	return ok && o == t
}

// Name returns the name of the method table type.
func (t *table) Name() string {
	return "methods"
}

// Extend adds the methods in m, for values whose type name is typ, to the
// env e. They are visible to expressions evaluated in e and the envs
// beneath it and take precedence over registered methods.
func Extend(e *env.T, typ string, m map[string]Method) {
	var t *table

	if found := e.Attached(attachment); len(found) > 0 {
		if local, ok := found[0].(*table); ok && local.owner == e {
			t = local
		}
	}

	if t == nil {
		t = &table{owner: e, types: map[string]map[string]Method{}}
		e.Attach(attachment, t)
	}

	if t.types[typ] == nil {
		t.types[typ] = map[string]Method{}
	}

	for k, v := range m {
		t.types[typ][k] = v
	}
}

// Register adds the methods in defs to those available for values whose
// type name is typ in every env. Only registered methods can be invoked.
func Register(typ string, defs map[string]Method) {
	methodsl.Lock()
	defer methodsl.Unlock()

	m, ok := methods[typ]
	if !ok {
		m = map[string]Method{}
		methods[typ] = m
	}

	for k, v := range defs {
		m[k] = v
	}
}

// MethodNames returns the sorted names of the methods registered for typ.
func MethodNames(typ string) []string {
	methodsl.RLock()
	defer methodsl.RUnlock()

	names := make([]string, 0, len(methods[typ]))
	for k := range methods[typ] {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Invoke calls the method called name on self as seen from the env e.
// A nil env sees only registered methods. It panics if the type of self
// has no such method.
func Invoke(e *env.T, name string, self, args cell.I, opts map[string]cell.I) cell.I {
	m := find(e, self.Name(), name)

	if m == nil {
		panic(self.Name() + " has no method " + name)
	}

	if opts == nil {
		opts = map[string]cell.I{}
	}

	return m(self, args, opts)
}

func find(e *env.T, typ, name string) Method {
	if e != nil {
		for _, c := range e.Attached(attachment) {
			if t, ok := c.(*table); ok && t.types[typ][name] != nil {
				return t.types[typ][name]
			}
		}
	}

	methodsl.RLock()
	defer methodsl.RUnlock()

	return methods[typ][name]
}

// Options splits the :key value pairs out of the evaluated arguments args.
// A key is a string starting with a colon.
func Options(args cell.I) (cell.I, map[string]cell.I) {
	positional := []cell.I{}
	opts := map[string]cell.I{}

	for args != pair.Null {
		c := pair.Car(args)
		args = pair.Cdr(args)

		if !str.Is(c) || !strings.HasPrefix(str.To(c).String(), ":") {
			positional = append(positional, c)

			continue
		}

		key := str.To(c).String()
		if args == pair.Null {
			panic("supplied argument " + key + " given without value")
		}

		opts[key[1:]] = pair.Car(args)
		args = pair.Cdr(args)
	}

	return list.New(positional...), opts
}
