// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/redstar-bot/cclisp/internal/common"
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/integer"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/common/validate"
)

// Longest a single match may run.
const matchTimeout = time.Second

// (refindall pattern text) returns every match. With no groups each match
// is a string. With one group it is that group. With more it is a list.
func refindall(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	re, _ := compile(common.String(v[0]))
	s := common.String(v[1])

	found := []cell.I{}

	m, err := re.FindStringMatch(s)
	for ; m != nil && err == nil; m, err = re.FindNextMatch(m) {
		groups := submatches(m)

		switch len(groups) {
		case 1:
			found = append(found, groups[0])
		case 2: //nolint:gomnd
			found = append(found, groups[1])
		default:
			found = append(found, list.New(groups[1:]...))
		}
	}

	if err != nil {
		panic(err.Error())
	}

	return list.New(found...)
}

// (rematch pattern text) matches at the start of text. The result is the
// list of the whole match and each group, or () if there is no match.
func rematch(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	re, _ := compile(`\A(?:` + common.String(v[0]) + `)`)

	m, err := re.FindStringMatch(common.String(v[1]))
	if err != nil {
		panic(err.Error())
	}

	if m == nil {
		return pair.Null
	}

	return list.New(submatches(m)...)
}

// (resub pattern replacement text) or (resub pattern replacement text count)
// Replacements refer to groups as \1 or \g<name>.
func resub(args cell.I) cell.I {
	v := validate.Fixed(args, 3, 4)

	re, names := compile(common.String(v[0]))

	n := -1
	if len(v) == 4 { //nolint:gomnd
		if n = integer.Int(v[3]); n == 0 {
			n = -1
		}
	}

	s, err := re.Replace(common.String(v[2]), expansion(common.String(v[1]), names), -1, n)
	if err != nil {
		panic(err.Error())
	}

	return str.New(s)
}

// compile numbers every capturing group in the order it opens, named or
// not, and returns the number of each named group. Named groups may be
// written (?P<name>...), (?<name>...) or (?'name'...) and referred to as
// (?P=name) or \k<name>.
func compile(pattern string) (*regexp2.Regexp, map[string]int) {
	expr, names := numbered(pattern)

	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		panic("bad regular expression: " + err.Error())
	}

	re.MatchTimeout = matchTimeout

	return re, names
}

func numbered(pattern string) (string, map[string]int) {
	var b strings.Builder

	names := map[string]int{}
	groups := 0
	class := false

	group := func() {
		groups++
		b.WriteString("(?<" + strconv.Itoa(groups) + ">")
	}

	reference := func(name string) {
		n, ok := names[name]
		if !ok {
			panic("bad regular expression: unknown group name " + name)
		}

		b.WriteString(`\k<` + strconv.Itoa(n) + ">")
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		rest := pattern[i:]

		switch {
		case strings.HasPrefix(rest, `\k<`) && !class:
			end := terminated(rest, 3, '>')
			reference(rest[3:end])
			i += end
		case c == '\\' && i+1 < len(pattern):
			b.WriteString(rest[:2])
			i++
		case class:
			class = c != ']'
			b.WriteByte(c)
		case c == '[':
			class = true
			b.WriteByte(c)

			// A ] straight after [ or [^ is part of the class.
			for _, lead := range []byte{'^', ']'} {
				if i+1 < len(pattern) && pattern[i+1] == lead {
					b.WriteByte(lead)
					i++
				}
			}
		case strings.HasPrefix(rest, "(?P="):
			end := terminated(rest, 4, ')')
			reference(rest[4:end])
			i += end
		case strings.HasPrefix(rest, "(?P<"):
			end := terminated(rest, 4, '>')
			group()
			names[rest[4:end]] = groups
			i += end
		case strings.HasPrefix(rest, "(?<") && !strings.HasPrefix(rest, "(?<=") &&
			!strings.HasPrefix(rest, "(?<!"):
			end := terminated(rest, 3, '>')
			group()
			names[rest[3:end]] = groups
			i += end
		case strings.HasPrefix(rest, "(?'"):
			end := terminated(rest, 3, '\'')
			group()
			names[rest[3:end]] = groups
			i += end
		case c == '(' && !strings.HasPrefix(rest, "(?"):
			group()
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), names
}

// terminated returns the position in s of the first stop at or after from.
func terminated(s string, from int, stop byte) int {
	end := strings.IndexByte(s[from:], stop)
	if end < 0 {
		panic("bad regular expression: missing " + string(stop) + ", unterminated name")
	}

	return from + end
}

// expansion converts a replacement using \N and \g<name> group references
// to the ${N} form that regexp2 expands. Names are numbered by names.
func expansion(repl string, names map[string]int) string {
	var b strings.Builder

	for i := 0; i < len(repl); i++ {
		c := repl[i]

		if c == '$' {
			b.WriteString("$$")

			continue
		}

		if c != '\\' || i+1 == len(repl) {
			b.WriteByte(c)

			continue
		}

		i++

		switch d := repl[i]; {
		case d >= '0' && d <= '9':
			j := i
			for j < len(repl) && j < i+2 && repl[j] >= '0' && repl[j] <= '9' {
				j++
			}

			b.WriteString("${" + repl[i:j] + "}")
			i = j - 1
		case d == 'g' && i+1 < len(repl) && repl[i+1] == '<':
			end := strings.IndexByte(repl[i:], '>')
			if end < 0 {
				panic("missing >, unterminated name")
			}

			b.WriteString("${" + groupNumber(repl[i+2:i+end], names) + "}")
			i += end
		case d == 'n':
			b.WriteByte('\n')
		case d == 't':
			b.WriteByte('\t')
		case d == '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(d)
		}
	}

	return b.String()
}

// groupNumber returns the group number that name refers to.
func groupNumber(name string, names map[string]int) string {
	if name != "" && strings.Trim(name, "0123456789") == "" {
		return name
	}

	n, ok := names[name]
	if !ok {
		panic("unknown group name " + name)
	}

	return strconv.Itoa(n)
}

// submatches returns the whole match and each group. Groups that did not
// take part in the match are ().
func submatches(m *regexp2.Match) []cell.I {
	groups := []cell.I{}

	for _, g := range m.Groups() {
		if len(g.Captures) == 0 {
			groups = append(groups, pair.Null)

			continue
		}

		groups = append(groups, str.New(g.String()))
	}

	return groups
}
