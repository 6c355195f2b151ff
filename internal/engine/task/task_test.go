// Released under an MIT license. See LICENSE.

package task_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/errsys"
	"github.com/redstar-bot/cclisp/internal/common/type/list"
	"github.com/redstar-bot/cclisp/internal/common/type/str"
	"github.com/redstar-bot/cclisp/internal/engine"
	"github.com/redstar-bot/cclisp/internal/engine/boot"
	"github.com/redstar-bot/cclisp/internal/engine/task"
)

func evaluate(t *testing.T, e *env.T, s string) cell.I {
	t.Helper()

	v, err := engine.Run(s, e)
	if err != nil {
		t.Fatalf("Unexpected error evaluating %q: %v", s, err)
	}

	return v
}

func expect(t *testing.T, s, want string) {
	t.Helper()

	v := evaluate(t, boot.Standard(nil), s)
	if got := task.Display(v); got != want {
		t.Fatalf("Expected %q to give %q; got %q", s, want, got)
	}
}

func failure(t *testing.T, s, want string) error {
	t.Helper()

	_, err := engine.Run(s, boot.Standard(nil))
	if err == nil {
		t.Fatalf("Expected %q to fail", s)
	}

	var te *task.Error
	if !errors.As(err, &te) {
		t.Fatalf("Expected a task.Error for %q; got %T", s, err)
	}

	if !strings.Contains(err.Error(), want) {
		t.Fatalf("Expected %q in the error for %q; got %q", want, s, err.Error())
	}

	return err
}

func TestAddition(t *testing.T) {
	expect(t, "(+ 1 2)", "3")
}

func TestIfWithStrings(t *testing.T) {
	expect(t, `(if (> 2 1) "yes" "no")`, "yes")
	expect(t, `(if (< 2 1) "yes" "no")`, "no")
}

func TestIfArity(t *testing.T) {
	failure(t, "(if true 1)", "(if): expected 3 arguments, passed 2")
}

func TestDefineThenAssign(t *testing.T) {
	expect(t, "(define x 1) (:= x (+ x 1)) x", "2")
}

func TestAssignUndefined(t *testing.T) {
	failure(t, "(:= nope 1)", "undefined var nope")
}

func TestLambda(t *testing.T) {
	expect(t, "((lambda (a b) (+ a b)) 3 4)", "7")
	expect(t, "(define adder (lambda (n) (lambda (x) (+ x n)))) ((adder 5) 10)", "15")
}

func TestLexicalScope(t *testing.T) {
	expect(t, `
(define n 100)
(define f (lambda (x) (+ x n)))
(define g (lambda (n) (f 1)))
(g 5)`, "101")
}

func TestProcedureArity(t *testing.T) {
	failure(t, "((lambda (a b) a) 1)", "procedure expects 2 arguments, given 1")
}

func TestUndefinedVariable(t *testing.T) {
	failure(t, "(+ 1 missing)", "(+): undefined var missing")
}

func TestErrorChain(t *testing.T) {
	err := failure(t, "(+ 1 (car ()))", "(+): (car): index out of range")

	var te *task.Error

	errors.As(err, &te)

	if len(te.Head) != 2 || te.Head[0] != "+" || te.Head[1] != "car" {
		t.Fatalf("Expected heads [+ car]; got %v", te.Head)
	}
}

func TestTimeout(t *testing.T) {
	e := boot.Standard(nil, boot.Budget(10*time.Millisecond))

	started := time.Now()

	_, err := engine.Run("(while true (pass))", e)
	if !errors.Is(err, task.ErrTimeout) {
		t.Fatalf("Expected %v; got %v", task.ErrTimeout, err)
	}

	if elapsed := time.Since(started); elapsed > time.Second {
		t.Fatalf("Expected the loop to stop promptly; took %v", elapsed)
	}
}

func TestTryFallback(t *testing.T) {
	expect(t, `(try (car ()) "fallback")`, "fallback")
	expect(t, `(try (+ 1 1) "fallback")`, "2")
}

func TestTryFailureValue(t *testing.T) {
	v := evaluate(t, boot.Standard(nil), "(try (car ()))")
	if !errsys.Is(v) {
		t.Fatalf("Expected a failure value; got %v", v)
	}

	if s := task.Display(v); !strings.Contains(s, "index out of range") {
		t.Fatalf("Expected the failure message; got %q", s)
	}

	expect(t, "(if (try (car ())) 1 2)", "2")
}

func TestTryCatchesTimeout(t *testing.T) {
	e := boot.Standard(nil, boot.Budget(10*time.Millisecond))

	v := evaluate(t, e, "(try (while true (pass)))")
	if !errsys.Is(v) || !errors.Is(errsys.To(v).Err(), task.ErrTimeout) {
		t.Fatalf("Expected a timeout failure value; got %v", v)
	}
}

func TestQuoteAndUnquote(t *testing.T) {
	expect(t, "(quote (a b c))", "(a b c)")
	expect(t, `(define x 5) (unquote "x")`, "5")
}

func TestEmptyForm(t *testing.T) {
	expect(t, "(null? ())", "true")
}

func TestWhile(t *testing.T) {
	expect(t, `
(define i 0)
(define total 0)
(while (< i 5) (:= total (+ total i)) (:= i (+ i 1)))
total`, "10")
}

func TestPrint(t *testing.T) {
	e := boot.Standard(nil)

	evaluate(t, e, `(print "a" 1) (print (list 1 2))`)

	if out := task.Display(e.Lookup("output").Get()); out != "a 1\n(1 2)\n" {
		t.Fatalf("Expected printed lines; got %q", out)
	}
}

func TestStruct(t *testing.T) {
	expect(t, `
(struct point (x y))
(make-point p 3 4)
(point-pos p point-y-pos)`, "4")
	expect(t, "(struct point (x y)) (make-point p 3 4) (point? p)", "true")
	expect(t, "(struct point (x y)) (point? (list 1 2 3))", "false")
	failure(t, "(struct point (x y)) (make-point p 3)", "make-point requires 2 values, given 1")
}

func TestIndexedNames(t *testing.T) {
	expect(t, "(define xs (list 1 (list 2 3))) xs:1:0", "2")
	expect(t, "(define xs (list 1 (list 2 3))) (define i 1) xs:i", "(2 3)")
	expect(t, "(define xs (list 1 (list 2 3))) (:= xs:1:0 9) xs", "(1 (9 3))")
	expect(t, `(define s "hello") s:-1`, "o")
}

func TestChecks(t *testing.T) {
	expect(t, "(check-expect (+ 1 1) 2)", "true")
	expect(t, "(check-within 5 1 10)", "true")
	expect(t, "(check-within 11 1 10)", "false")
	expect(t, "(member? 2 (list 1 2 3))", "true")
	expect(t, `(member? "ell" "hello")`, "true")
}

func TestMethods(t *testing.T) {
	expect(t, `(>> "upper" "abc")`, "ABC")
	expect(t, `(>> "join" ", " (list "a" "b"))`, "a, b")
	expect(t, `(>> "format" "{} {name}" 1 ":name" "x")`, "1 x")
	expect(t, `(>> "length" (list 1 2 3))`, "3")
	failure(t, `(>> "nope" 1)`, "int has no method nope")
	failure(t, `(>> "format" "{}" ":name")`, "supplied argument :name given without value")
}

func TestArgs(t *testing.T) {
	e := boot.Standard(nil)

	evaluate(t, e, `(define args (list "a" "b" "c")) (define argstring "a b c")`)

	for s, want := range map[string]string{
		"(args)":     "a b c",
		"(args 1)":   "b",
		"(args -1)":  "c",
		"(args 5)":   "()",
		"(args *)":   "(a b c)",
		"(args 1 *)": "(b c)",
		"(args * 2)": "(a b)",
		"(args 0 2)": "(a b)",
	} {
		if got := task.Display(evaluate(t, e, s)); got != want {
			t.Fatalf("Expected %s to give %q; got %q", s, want, got)
		}
	}
}

func TestLookupDoesNotLeak(t *testing.T) {
	root := boot.Standard(nil)
	root.Seal()

	child := env.Root(root, 0)
	evaluate(t, child, "(:= pi 3)")

	if got := task.Display(evaluate(t, child, "pi")); got != "3" {
		t.Fatalf("Expected the child to see 3; got %q", got)
	}

	if got := task.Display(evaluate(t, env.New(root), "pi")); got == "3" {
		t.Fatal("Expected the root binding of pi to be unchanged")
	}
}

func TestArgCount(t *testing.T) {
	root := boot.Standard(nil)
	root.Seal()

	e := env.Root(root, 0)
	e.Define("args", list.New(str.New("a"), str.New("b"), str.New("c")))

	if got := task.Display(evaluate(t, e, "(arg-count)")); got != "3" {
		t.Fatalf("Expected 3 arguments; got %s", got)
	}

	if got := task.Display(evaluate(t, env.Root(root, 0), "(arg-count)")); got != "0" {
		t.Fatalf("Expected no arguments; got %s", got)
	}

	failure(t, "(arg-count 1)", "(arg-count)")
}

func TestAppendToEmpty(t *testing.T) {
	expect(t, "(define out (list)) (append out 1) (append out 2) out", "(1 2)")
	expect(t, "(define out ()) (append out (list 1)) out", "((1))")
	expect(t, "(define out (list 1)) (append out 2) (append out 3) out", "(1 2 3)")
	expect(t, "(define xs (list ())) (append xs:0 1) xs", "((1))")
	expect(t, "(append (list) 1)", "(1)")
	expect(t, "(append 1 2)", "3")
	expect(t, `(map append (list (list 1) (list 2)) (list 3 4))`, "((1 3) (2 4))")
}

func TestHugeFloatLiteral(t *testing.T) {
	expect(t, "(define x 1e1000) x", "inf")
	expect(t, `(assert 1e1000 "float")`, "inf")
}

func TestMethodsPerRoot(t *testing.T) {
	twice := func(self, _ cell.I, _ map[string]cell.I) cell.I {
		return list.New(self, self)
	}

	with := boot.Standard(nil, boot.Methods("int", map[string]task.Method{"twice": twice}))
	without := boot.Standard(nil)

	if got := task.Display(evaluate(t, env.New(with), `(>> "twice" 2)`)); got != "(2 2)" {
		t.Fatalf("Expected (2 2); got %s", got)
	}

	_, err := engine.Run(`(>> "twice" 2)`, without)
	if err == nil || !strings.Contains(err.Error(), "int has no method twice") {
		t.Fatalf("Expected twice to be missing from another root; got %v", err)
	}
}

func TestCallerClock(t *testing.T) {
	root := boot.Standard(nil)

	evaluate(t, root, "(define spin (lambda (x) (while true (pass))))")
	root.Seal()

	for _, s := range []string{"(spin 1)", "(map spin (list 1))", "(apply spin (list 1))"} {
		e := env.Root(root, 10*time.Millisecond)

		started := time.Now()

		_, err := engine.Run(s, e)
		if !errors.Is(err, task.ErrTimeout) {
			t.Fatalf("Expected %s to time out; got %v", s, err)
		}

		if elapsed := time.Since(started); elapsed > time.Second {
			t.Fatalf("Expected %s to stop promptly; took %v", s, elapsed)
		}
	}
}
