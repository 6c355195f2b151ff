// Released under an MIT license. See LICENSE.

package commands_test

import (
	"strings"
	"testing"

	"github.com/redstar-bot/cclisp/internal/engine"
	"github.com/redstar-bot/cclisp/internal/engine/boot"
	"github.com/redstar-bot/cclisp/internal/engine/task"
)

type example struct {
	expr string
	want string
}

func run(t *testing.T, examples []example) {
	t.Helper()

	e := boot.Standard(nil)

	for _, x := range examples {
		v, err := engine.Run(x.expr, e)
		if err != nil {
			t.Fatalf("Unexpected error evaluating %s: %v", x.expr, err)
		}

		if got := task.Display(v); got != x.want {
			t.Fatalf("Expected %s to give %q; got %q", x.expr, x.want, got)
		}
	}
}

func fails(t *testing.T, expr, want string) {
	t.Helper()

	_, err := engine.Run(expr, boot.Standard(nil))
	if err == nil {
		t.Fatalf("Expected %s to fail", expr)
	}

	if !strings.Contains(err.Error(), want) {
		t.Fatalf("Expected %q in the error for %s; got %q", want, expr, err.Error())
	}
}

func TestArithmetic(t *testing.T) {
	run(t, []example{
		{"(+ 1 2 3)", "6"},
		{`(+ "a" "b")`, "ab"},
		{"(+ (list 1) (list 2))", "(1 2)"},
		{"(+ true 1)", "2"},
		{"(- 5)", "-5"},
		{"(- 10 1 2)", "7"},
		{"(/ 7 2)", "3.5"},
		{"(/ 4 2)", "2.0"},
		{"(// -7 2)", "-4"},
		{"(% -7 2)", "1"},
		{`(* "ab" 3)`, "ababab"},
		{"(* 2 3 4)", "24"},
		{"(* 99999999999 99999999999)", "9999999999800000000001"},
	})
}

func TestArithmeticErrors(t *testing.T) {
	fails(t, "(/ 1 0)", "(/): division by zero")
	fails(t, `(+ "a" 1)`, "can only concatenate string (not int) to string")
	fails(t, `(- "a" 1)`, "string cannot be used in a numeric context")
}

func TestNumbers(t *testing.T) {
	run(t, []example{
		{"(abs -3)", "3"},
		{"(round 2.5)", "2"},
		{"(round 3.5)", "4"},
		{"(round 3.14159 2)", "3.14"},
		{`(int "ff" 16)`, "255"},
		{"(int 2.9)", "2"},
		{`(float "1.5")`, "1.5"},
		{"(factorial 5)", "120"},
		{"(gcd 12 18)", "6"},
		{"(sqrt 16)", "4.0"},
		{"(number? 1.5)", "true"},
		{"(number? true)", "false"},
	})

	fails(t, "(sqrt -1)", "math domain error")
	fails(t, `(int "x")`, "invalid literal for int() with base 10: 'x'")
}

func TestRelational(t *testing.T) {
	run(t, []example{
		{"(== 1 1 1)", "true"},
		{"(== 1 1.0)", "true"},
		{"(< 1 2 3)", "true"},
		{"(< 1 3 2)", "false"},
		{`(>= "b" "a")`, "true"},
		{"(!= 1 2)", "true"},
		{"(not ())", "true"},
		{"(not 1)", "false"},
		{"(<> true false)", "true"},
		{"(<> 6 3)", "5"},
	})
}

func TestLists(t *testing.T) {
	run(t, []example{
		{"(range 5)", "(0 1 2 3 4)"},
		{"(range 1 10 3)", "(1 4 7)"},
		{"(range 5 0 -2)", "(5 3 1)"},
		{"(map (lambda (x) (* x 2)) (list 1 2 3))", "(2 4 6)"},
		{"(map + (list 1 2) (list 10 20 30))", "(11 22)"},
		{"(filter (lambda (x) (> x 1)) (list 1 2 3))", "(2 3)"},
		{"(reduce + (list 1 2 3))", "6"},
		{"(reduce + (list) 10)", "10"},
		{"(sort (list 3 1 2))", "(1 2 3)"},
		{"(zip (list 1 2) (list 3 4 5))", "((1 3) (2 4))"},
		{"(sum (list 1 2 3))", "6"},
		{"(max 1 5 3)", "5"},
		{"(min (list 4 2 8))", "2"},
		{`(len "héllo")`, "5"},
		{"(len (list 1 2))", "2"},
		{"(in (list 1 2) 2)", "true"},
		{`(in "hello" "ell")`, "true"},
		{`(reverse "abc")`, "cba"},
		{"(reverse (list 1 2 3))", "(3 2 1)"},
		{"(cons 1 (list 2))", "(1 2)"},
		{"(car (list 1 2))", "1"},
		{"(cdr (list 1 2))", "(2)"},
		{"(# 1 (list 1 2 3))", "2"},
		{"(# -1 (list 1 2 3))", "3"},
		{`(tolist "ab")`, "(a b)"},
		{"(apply + (list 1 2))", "3"},
		{"(append (list 1) 2)", "(1 2)"},
		{"(do 1 2 3)", "3"},
		{"(list? (list))", "true"},
		{"(null? (list 1))", "false"},
	})
}

func TestListErrors(t *testing.T) {
	fails(t, "(reduce + (list))", "reduce of empty sequence with no initial value")
	fails(t, "(range 1 2 0)", "range step must not be zero")
	fails(t, "(max (list))", "arg is an empty sequence")
	fails(t, "(car 1)", "int is not subscriptable")
}

func TestListMethods(t *testing.T) {
	run(t, []example{
		{`(>> "count" (list 1 2 1) 1)`, "2"},
		{`(>> "length" (list 1 2 3))`, "3"},
		{`(define xs (list 1 2)) (>> "insert" xs 0 9) xs`, "(9 1 2)"},
		{`(define ys (list 1 2 3)) (>> "pop" ys)`, "3"},
		{`(define zs (list 1)) (>> "append" zs 2) zs`, "(1 2)"},
	})

	fails(t, `(>> "pop" (list 1))`, "pop needs a list of at least two elements")
}

func TestStringMethods(t *testing.T) {
	run(t, []example{
		{`(>> "split" "a b  c")`, "(a b c)"},
		{`(>> "split" "a,b,c" "," 1)`, "(a b,c)"},
		{`(>> "center" "ab" 6 "*")`, "**ab**"},
		{`(>> "ljust" "ab" 4 ".")`, "ab.."},
		{`(>> "rjust" "ab" 4)`, "  ab"},
		{`(>> "zfill" "-42" 5)`, "-0042"},
		{`(>> "title" "hello world")`, "Hello World"},
		{`(>> "capitalize" "hELLO")`, "Hello"},
		{`(>> "swapcase" "aB")`, "Ab"},
		{`(>> "find" "héllo" "l")`, "2"},
		{`(>> "rfind" "hello" "l")`, "3"},
		{`(>> "find" "hello" "z")`, "-1"},
		{`(>> "replace" "aaa" "a" "b" 2)`, "bba"},
		{`(>> "count" "banana" "an")`, "2"},
		{`(>> "strip" "  hi  ")`, "hi"},
		{`(>> "startswith" "hello" "he")`, "true"},
		{`(>> "isdigit" "123")`, "true"},
		{`(>> "format" "{0}-{0} {{x}}" "a")`, "a-a {x}"},
		{`(str "upper" "abc")`, "ABC"},
		{`(str 12)`, "12"},
		{`(f "a" 1 "b")`, "a1b"},
	})

	fails(t, `(str "nope" "abc")`, "str does not have method nope")
	fails(t, `(>> "center" "ab" 6 "**")`, "the fill character must be exactly one character long")
	fails(t, `(>> "split" "ab" "")`, "empty separator")
}

func TestRegex(t *testing.T) {
	run(t, []example{
		{`(refindall "[0-9]+" "a1b22")`, "(1 22)"},
		{`(refindall "[a-z]([0-9])" "a1b2")`, "(1 2)"},
		{`(refindall "([a-z])([0-9])" "a1b2")`, "((a 1) (b 2))"},
		{`(rematch "([a-z]+)" "abc1")`, "(abc abc)"},
		{`(rematch "[0-9]" "a1")`, "()"},
		{`(rematch "(a)|(b)" "b")`, "(b () b)"},
		{`(resub "a" "b" "aaa")`, "bbb"},
		{`(resub "a" "b" "aaa" 2)`, "bba"},
		{`(resub "a" "$" "a")`, "$"},
		{`(resub "(?<=a)b" "X" "abcb")`, "aXcb"},
		{`(refindall "b(?!c)" "bcbd")`, "(b)"},
		{`(rematch "(a)\1" "aab")`, "(aa a)"},
		{`(rematch "(?P<x>a)(?P=x)" "aab")`, "(aa a)"},
		{`(refindall "(?P<x>[a-z])([0-9])" "a1b2")`, "((a 1) (b 2))"},
		{`(resub "(?P<w>[a-z]+)-(\d)" "\2:\g<w>" "ab-1")`, "1:ab"},
	})

	fails(t, `(rematch "(" "x")`, "bad regular expression")
	fails(t, `(resub "a" "\g<x>" "a")`, "unknown group name x")
}

func TestAssert(t *testing.T) {
	run(t, []example{
		{`(assert "12" "int")`, "12"},
		{`(assert "x" "int" 0)`, "0"},
		{`(assert "1.5" "float")`, "1.5"},
		{`(assert 1 "dict")`, "()"},
	})

	fails(t, `(assert "x" "int")`, "assertion error: x is not a valid int")
}

func TestBooleansAndSymbols(t *testing.T) {
	run(t, []example{
		{`(bool "no")`, "false"},
		{`(bool "yes")`, "true"},
		{`(bool "anything")`, "true"},
		{`(bool 0)`, "false"},
		{"(boolean? false)", "true"},
		{`(string? "a")`, "true"},
		{`(symbol "ABC")`, "abc"},
		{`(symbol? (symbol "a"))`, "true"},
		{`(symbol? "a")`, "true"},
		{"(symbol? 1)", "false"},
		{"(procedure? car)", "true"},
	})
}

func TestFormat(t *testing.T) {
	run(t, []example{
		{"(fmtnum 1234567)", "1,234,567"},
		{`(fmtnum 1234567 "de-DE")`, "1.234.567"},
		{"(fmtpct 0.25)", "25%"},
	})

	fails(t, `(fmtcur 1 "XYZW")`, "invalid currency code: XYZW")
}

func TestRandom(t *testing.T) {
	run(t, []example{
		{"(randint 3 3)", "3"},
		{"(choice (list 7))", "7"},
		{"(ezchoice 8)", "8"},
		{"(len (uuid))", "36"},
	})

	fails(t, "(randint 2 1)", "empty range for randint(2, 1)")
	fails(t, "(choice (list))", "cannot choose from an empty sequence")
}

func TestTranscode(t *testing.T) {
	run(t, []example{
		{`(transcode "abc")`, "abc"},
		{`(transcode "abc" "ab" "xy")`, "xyc"},
		{`(transcode (transcode "hello" "helo" "HELO") "HELO" "helo")`, "hello"},
	})

	fails(t, `(transcode "abc" "nope")`, "nope is not a supported transcoding.")
	fails(t, `(transcode "abc" "ab" "x")`, "To and From transcoding patterns must be the same length.")
}

func TestBootHelpers(t *testing.T) {
	run(t, []example{
		{"(first (list 1 2 3))", "1"},
		{"(second (list 1 2 3))", "2"},
		{"(last (list 1 2 3))", "3"},
		{"(rest (list 1 2 3))", "(2 3)"},
		{"(empty? (list))", "true"},
		{"(inc 1)", "2"},
		{"(dec 1)", "0"},
	})
}
