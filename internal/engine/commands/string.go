// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/interface/literal"
	"github.com/redstar-bot/cclisp/internal/common/type/boolean"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/type/sym"
	"github.com/redstar-bot/cclisp/internal/common/validate"
	"github.com/redstar-bot/cclisp/internal/engine/task"
)

// StringMethods returns a mapping of names to string methods.
func StringMethods() map[string]task.Method {
	return map[string]task.Method{
		"capitalize": capitalize,
		"casefold":   unary(fold),
		"center":     pad(center),
		"count":      scount,
		"endswith":   suffix,
		"find":       find,
		"format":     sformat,
		"isalnum":    every(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }),
		"isalpha":    every(unicode.IsLetter),
		"isdigit":    every(unicode.IsDigit),
		"islower":    cased(unicode.IsLower, unicode.IsUpper),
		"isspace":    every(unicode.IsSpace),
		"isupper":    cased(unicode.IsUpper, unicode.IsLower),
		"join":       join,
		"ljust":      pad(func(n, _ int) (int, int) { return 0, n }),
		"lower":      unary(lower),
		"lstrip":     strip(strings.TrimLeft, strings.TrimLeftFunc),
		"replace":    sreplace,
		"rfind":      rfind,
		"rjust":      pad(func(n, _ int) (int, int) { return n, 0 }),
		"rstrip":     strip(strings.TrimRight, strings.TrimRightFunc),
		"split":      split,
		"startswith": prefix,
		"strip":      strip(strings.Trim, strings.TrimFunc),
		"swapcase":   unary(swapcase),
		"title":      unary(title),
		"upper":      unary(upper),
		"zfill":      zfill,
	}
}

// (f value...) concatenates the text of each value.
func concatenate(args cell.I) cell.I {
	var b strings.Builder

	for _, c := range list.Slice(args) {
		b.WriteString(task.Display(c))
	}

	return str.New(b.String())
}

func isProcedure(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(task.IsCallable(v[0]))
}

func isString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(str.Is(v[0]))
}

// (match? pattern text) matches text against a shell glob pattern.
func match(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	ok, err := adapted.Match(common.String(v[0]), common.String(v[1]))
	if err != nil {
		panic(err.Error())
	}

	return boolean.Bool(ok)
}

// (repr value) returns an unambiguous rendering of value.
func repr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if str.Is(v[0]) {
		return str.New(adapted.CanonicalString(str.To(v[0]).String()))
	}

	if l, ok := v[0].(literal.I); ok {
		return str.New(l.Literal())
	}

	return str.New(task.Display(v[0]))
}

// (str) is (). (str value) is the text of value.
// (str method text arg...) calls a string method.
func stringify(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 0, 2)

	switch len(v) {
	case 0:
		return pair.Null
	case 1:
		return str.New(task.Display(v[0]))
	}

	m := common.String(v[0])

	found := false

	for _, k := range task.MethodNames(str.New("").Name()) {
		if k == m {
			found = true
		}
	}

	if !found {
		panic("str does not have method " + m)
	}

	positional, opts := task.Options(rest)

	return task.Invoke(nil, m, text(v[1]), positional, opts)
}

// (unescape text) converts escape sequences such as \t and é.
func unescape(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	s, err := adapted.ActualBytes(common.String(v[0]))
	if err != nil {
		panic(err.Error())
	}

	return str.New(s)
}

// String methods.

func capitalize(self, args cell.I, _ map[string]cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	s := str.To(self).String()
	if s == "" {
		return self
	}

	_, n := utf8.DecodeRuneInString(s)

	return str.New(upper(s[:n]) + lower(s[n:]))
}

func find(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return position(self, v[0], strings.Index)
}

func join(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	parts := []string{}

	for _, c := range items(v[0]) {
		if !str.Is(c) {
			panic("sequence item: expected string, " + c.Name() + " found")
		}

		parts = append(parts, str.To(c).String())
	}

	return str.New(strings.Join(parts, str.To(self).String()))
}

func prefix(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(strings.HasPrefix(str.To(self).String(), common.String(v[0])))
}

func rfind(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return position(self, v[0], strings.LastIndex)
}

func scount(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	s, sub := str.To(self).String(), common.String(v[0])
	if sub == "" {
		return num.Int(int64(len([]rune(s)) + 1))
	}

	return num.Int(int64(strings.Count(s, sub)))
}

// (>> format template arg... :name value...) fills {} {0} and {name} fields.
func sformat(self, args cell.I, opts map[string]cell.I) cell.I {
	positional := list.Slice(args)
	template := str.To(self).String()

	var b strings.Builder

	next := 0

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch {
		case c == '{' && strings.HasPrefix(template[i:], "{{"):
			b.WriteByte('{')
			i++
		case c == '}' && strings.HasPrefix(template[i:], "}}"):
			b.WriteByte('}')
			i++
		case c == '}':
			panic("single '}' encountered in format string")
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				panic("single '{' encountered in format string")
			}

			field := template[i+1 : i+end]
			i += end

			if strings.ContainsAny(field, ":!") {
				panic("format specs are not supported: {" + field + "}")
			}

			var value cell.I

			switch n, err := strconv.Atoi(field); {
			case field == "":
				value = nth(positional, next)
				next++
			case err == nil:
				value = nth(positional, n)
			default:
				value = opts[field]
				if value == nil {
					panic("no value for format field '" + field + "'")
				}
			}

			b.WriteString(task.Display(value))
		default:
			b.WriteByte(c)
		}
	}

	return str.New(b.String())
}

// (>> replace text old new) or (>> replace text old new count)
func sreplace(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 2, 3)

	n := -1
	if len(v) == 3 { //nolint:gomnd
		n = integer.Int(v[2])
	}

	s := str.To(self).String()

	return str.New(strings.Replace(s, common.String(v[0]), common.String(v[1]), n))
}

// (>> split text), (>> split text sep) or (>> split text sep maxsplit)
func split(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 0, 2)

	s := str.To(self).String()

	n := -1
	if len(v) == 2 { //nolint:gomnd
		n = integer.Int(v[1])
		if n >= 0 {
			n++
		}
	}

	var parts []string

	if len(v) == 0 || v[0] == pair.Null {
		parts = strings.Fields(s)
		if n > 0 && len(parts) > n {
			parts = fieldsN(s, n)
		}
	} else {
		sep := common.String(v[0])
		if sep == "" {
			panic("empty separator")
		}

		parts = strings.SplitN(s, sep, n)
	}

	elements := make([]cell.I, len(parts))
	for i, p := range parts {
		elements[i] = str.New(p)
	}

	return list.New(elements...)
}

func suffix(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(strings.HasSuffix(str.To(self).String(), common.String(v[0])))
}

func zfill(self, args cell.I, _ map[string]cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	s := str.To(self).String()
	width := integer.Int(v[0])

	n := width - len([]rune(s))
	if n <= 0 {
		return self
	}

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	return str.New(sign + strings.Repeat("0", n) + s)
}

func center(n, width int) (int, int) {
	left := n/2 + (n & width & 1) //nolint:gomnd

	return left, n - left
}

func cased(want, other func(rune) bool) task.Method {
	return func(self, args cell.I, _ map[string]cell.I) cell.I {
		validate.Fixed(args, 0, 0)

		seen := false

		for _, r := range str.To(self).String() {
			if other(r) {
				return boolean.False
			}

			seen = seen || want(r)
		}

		return boolean.Bool(seen)
	}
}

func every(ok func(rune) bool) task.Method {
	return func(self, args cell.I, _ map[string]cell.I) cell.I {
		validate.Fixed(args, 0, 0)

		s := str.To(self).String()
		if s == "" {
			return boolean.False
		}

		for _, r := range s {
			if !ok(r) {
				return boolean.False
			}
		}

		return boolean.True
	}
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// fieldsN splits s on runs of whitespace into at most n fields.
func fieldsN(s string, n int) []string {
	parts := []string{}

	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	for len(parts) < n-1 && s != "" {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}

		parts = append(parts, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}

	if s != "" {
		parts = append(parts, s)
	}

	return parts
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func nth(v []cell.I, i int) cell.I {
	if i < 0 || i >= len(v) {
		panic("format index " + strconv.Itoa(i) + " out of range")
	}

	return v[i]
}

// pad returns a method that widens text to a width with a fill character.
// The split function divides the padding between the left and right.
func pad(split func(n, width int) (int, int)) task.Method {
	return func(self, args cell.I, _ map[string]cell.I) cell.I {
		v := validate.Fixed(args, 1, 2)

		s := str.To(self).String()
		width := integer.Int(v[0])

		fill := " "
		if len(v) == 2 { //nolint:gomnd
			fill = common.String(v[1])
			if utf8.RuneCountInString(fill) != 1 {
				panic("the fill character must be exactly one character long")
			}
		}

		n := width - utf8.RuneCountInString(s)
		if n <= 0 {
			return self
		}

		left, right := split(n, width)

		return str.New(strings.Repeat(fill, left) + s + strings.Repeat(fill, right))
	}
}

// position returns the rune offset of sub in self, or -1.
func position(self, sub cell.I, index func(s, sub string) int) cell.I {
	s := str.To(self).String()

	i := index(s, common.String(sub))
	if i < 0 {
		return num.Int(-1)
	}

	return num.Int(int64(len([]rune(s[:i]))))
}

func strip(
	chars func(s, cutset string) string,
	space func(s string, f func(rune) bool) string,
) task.Method {
	return func(self, args cell.I, _ map[string]cell.I) cell.I {
		v := validate.Fixed(args, 0, 1)

		s := str.To(self).String()
		if len(v) == 0 || v[0] == pair.Null {
			return str.New(space(s, unicode.IsSpace))
		}

		return str.New(chars(s, common.String(v[0])))
	}
}

func swapcase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}

		return r
	}, s)
}

// text returns c if it is a string. Symbols are converted.
func text(c cell.I) cell.I {
	switch {
	case str.Is(c):
		return c
	case sym.Is(c):
		return str.New(sym.To(c).String())
	}

	panic("expected a string, not " + c.Name())
}

func title(s string) string {
	return cases.Title(language.Und).String(s)
}

func unary(f func(string) string) task.Method {
	return func(self, args cell.I, _ map[string]cell.I) cell.I {
		validate.Fixed(args, 0, 0)

		return str.New(f(str.To(self).String()))
	}
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
