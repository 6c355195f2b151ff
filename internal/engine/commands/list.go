// Released under an MIT license. See LICENSE.

package commands

import (
	"sort"

	"github.com/redstar-bot/cclisp/internal/common/compare"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/interface/truth"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
	"github.com/redstar-bot/cclisp/internal/engine/task"
)

// Longest list range will build.
const maxRange = 1 << 20

// ListMethods returns a mapping of names to list methods.
func ListMethods() map[string]task.Method {
	return map[string]task.Method{
		"append":  appendMethod,
		"count":   countMethod,
		"extend":  extend,
		"get":     get,
		"head":    head,
		"index":   indexMethod,
		"insert":  insert,
		"length":  length,
		"pop":     pop,
		"reverse": reverseMethod,
		"slice":   slice,
		"tail":    tail,
	}
}

// A non-empty list is extended in place. The result is always the list.
func appendTo(self cell.I, elements ...cell.I) cell.I {
	if self == pair.Null {
		return list.New(elements...)
	}

	return list.Append(self, elements...)
}

// (append list item) adds item to the end of list. Anything else is added.
func appendItem(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	if pair.Is(v[0]) {
		return appendTo(v[0], v[1])
	}

	return add(args)
}

func apply(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	return task.Call(v[0], list.New(items(v[1])...), e)
}

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return task.Index(v[0], 0)
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	one := int64(1)

	if str.Is(v[0]) {
		r := []rune(str.To(v[0]).String())
		lo, hi := list.Bounds(int64(len(r)), &one, nil)

		return str.New(string(r[lo:hi]))
	}

	return list.Sub(sequence(v[0]), &one, nil)
}

func cons(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return list.New(append([]cell.I{v[0]}, list.Slice(sequence(v[1]))...)...)
}

func do(args cell.I) cell.I {
	v := list.Slice(args)
	if len(v) == 0 {
		return pair.Null
	}

	return v[len(v)-1]
}

func filter(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 2)

	kept := []cell.I{}

	for _, c := range items(v[1]) {
		if truth.Value(task.Call(v[0], list.New(c), e)) {
			kept = append(kept, c)
		}
	}

	return list.New(kept...)
}

// (# index sequence)
func index(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return task.Index(v[1], integer.Value(v[0]))
}

// (in container item)
func in(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(compare.Contains(v[0], v[1]))
}

func is(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(v[0] == v[1])
}

func isList(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(pair.Is(v[0]))
}

func isNull(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}

func length(self, args cell.I, _ map[string]cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return num.Int(int64(len(items(self))))
}

func lengthOf(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return length(v[0], pair.Null, nil)
}

func makeList(args cell.I) cell.I {
	return list.New(list.Slice(args)...)
}

// (map f seq...) stops at the end of the shortest sequence.
func mapping(args cell.I, e *env.T) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	seqs := [][]cell.I{items(v[1])}
	for _, c := range list.Slice(rest) {
		seqs = append(seqs, items(c))
	}

	mapped := []cell.I{}

	for i := 0; i < shortest(seqs); i++ {
		fargs := make([]cell.I, len(seqs))
		for j, s := range seqs {
			fargs[j] = s[i]
		}

		mapped = append(mapped, task.Call(v[0], list.New(fargs...), e))
	}

	return list.New(mapped...)
}

func maximum(args cell.I) cell.I {
	return extreme(args, 1)
}

func minimum(args cell.I) cell.I {
	return extreme(args, -1)
}

func pass(cell.I) cell.I {
	return pair.Null
}

// (range stop), (range start stop) or (range start stop step)
func makeRange(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 3)

	start, stop, step := int64(0), int64(0), int64(1)

	switch len(v) {
	case 1:
		stop = integer.Value(v[0])
	case 2: //nolint:gomnd
		start, stop = integer.Value(v[0]), integer.Value(v[1])
	default:
		start, stop, step = integer.Value(v[0]), integer.Value(v[1]), integer.Value(v[2])
	}

	if step == 0 {
		panic("range step must not be zero")
	}

	elements := []cell.I{}

	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		if len(elements) == maxRange {
			panic("range too large")
		}

		elements = append(elements, num.Int(i))
	}

	return list.New(elements...)
}

// (reduce f seq) or (reduce f seq initial)
func reduce(args cell.I, e *env.T) cell.I {
	v := validate.Fixed(args, 2, 3)

	elements := items(v[1])

	var acc cell.I

	switch {
	case len(v) == 3: //nolint:gomnd
		acc = v[2]
	case len(elements) == 0:
		panic("reduce of empty sequence with no initial value")
	default:
		acc, elements = elements[0], elements[1:]
	}

	for _, c := range elements {
		acc = task.Call(v[0], list.New(acc, c), e)
	}

	return acc
}

func reverse(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if str.Is(v[0]) {
		r := []rune(str.To(v[0]).String())
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}

		return str.New(string(r))
	}

	return list.Reverse(sequence(v[0]))
}

func sorted(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	elements := items(v[0])

	sort.SliceStable(elements, func(i, j int) bool {
		return compare.Cmp(elements[i], elements[j]) < 0
	})

	return list.New(elements...)
}

// (sum seq) or (sum seq start)
func sum(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	var total cell.I = num.Int(0)
	if len(v) == 2 { //nolint:gomnd
		total = v[1]
	}

	for _, c := range items(v[0]) {
		total = num.Add(arith(total), arith(c))
	}

	return total
}

func toList(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return list.New(items(v[0])...)
}

func zip(args cell.I) cell.I {
	seqs := [][]cell.I{}
	for _, c := range list.Slice(args) {
		seqs = append(seqs, items(c))
	}

	zipped := []cell.I{}

	for i := 0; len(seqs) > 0 && i < shortest(seqs); i++ {
		tuple := make([]cell.I, len(seqs))
		for j, s := range seqs {
			tuple[j] = s[i]
		}

		zipped = append(zipped, list.New(tuple...))
	}

	return list.New(zipped...)
}

// List methods.

func appendMethod(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return appendTo(self, v[0])
}

func countMethod(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n := int64(0)

	for _, c := range list.Slice(self) {
		if compare.Equal(c, v[0]) {
			n++
		}
	}

	return num.Int(n)
}

func extend(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return appendTo(self, items(v[0])...)
}

// (>> get list index) or (>> get list index default)
func get(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	i := integer.Value(v[0])

	if len(v) == 2 { //nolint:gomnd
		t := list.Tail(self, i, pair.Null)
		if t == pair.Null {
			return v[1]
		}

		return pair.Car(t)
	}

	return list.Get(self, i)
}

func head(self, args cell.I, _ map[string]cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	if self == pair.Null {
		panic("head of empty list")
	}

	return pair.Car(self)
}

func indexMethod(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	for i, c := range list.Slice(self) {
		if compare.Equal(c, v[0]) {
			return num.Int(int64(i))
		}
	}

	panic("item is not in list")
}

// (>> insert list index item) inserts item before position index.
func insert(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	i := integer.Value(v[0])
	n := list.Length(self)

	lo, _ := list.Bounds(n, &i, nil)
	if lo == n {
		return appendTo(self, v[1])
	}

	at := list.Tail(self, lo, nil)
	pair.SetCdr(at, pair.Cons(pair.Car(at), pair.Cdr(at)))
	pair.SetCar(at, v[1])

	return self
}

// (>> pop list) or (>> pop list index) removes an element and returns it.
// The list is changed in place so it must hold at least two elements.
func pop(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	i := int64(-1)
	if len(v) == 1 {
		i = integer.Value(v[0])
	}

	n := list.Length(self)
	if n < 2 { //nolint:gomnd
		panic("pop needs a list of at least two elements")
	}

	if i < 0 {
		i += n
	}

	popped := list.Get(self, i)

	if i == n-1 {
		pair.SetCdr(list.Tail(self, i-1, nil), pair.Null)

		return popped
	}

	at := list.Tail(self, i, nil)
	next := pair.Cdr(at)

	pair.SetCar(at, pair.Car(next))
	pair.SetCdr(at, pair.Cdr(next))

	return popped
}

func reverseMethod(self, args cell.I, _ map[string]cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return list.Reverse(self)
}

// (>> slice list start) or (>> slice list start end)
func slice(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	start := integer.Value(v[0])
	if len(v) == 1 {
		return list.Sub(self, &start, nil)
	}

	end := integer.Value(v[1])

	return list.Sub(self, &start, &end)
}

func tail(self, args cell.I, _ map[string]cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	if self == pair.Null {
		panic("tail of empty list")
	}

	return pair.Cdr(self)
}

func extreme(args cell.I, sign int) cell.I {
	v := list.Slice(args)
	if len(v) == 1 {
		v = items(v[0])
	}

	if len(v) == 0 {
		panic("arg is an empty sequence")
	}

	best := v[0]
	for _, c := range v[1:] {
		if compare.Cmp(c, best)*sign > 0 {
			best = c
		}
	}

	return best
}

// items returns the elements of a list or the characters of a string.
func items(c cell.I) []cell.I {
	switch {
	case pair.Is(c):
		return list.Slice(c)
	case str.Is(c):
		chars := []cell.I{}
		for _, r := range str.To(c).String() {
			chars = append(chars, str.New(string(r)))
		}

		return chars
	}

	panic(c.Name() + " is not iterable")
}

func sequence(c cell.I) cell.I {
	if !pair.Is(c) {
		panic("expected a list, not " + c.Name())
	}

	return c
}

func shortest(seqs [][]cell.I) int {
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) < n {
			n = len(s)
		}
	}

	return n
}
