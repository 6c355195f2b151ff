// Released under an MIT license. See LICENSE.

package options_test

import (
	"os"
	"testing"
	"time"

	"github.com/redstar-bot/cclisp/internal/system/options"
)

func parse(t *testing.T, argv ...string) {
	t.Helper()

	saved := os.Args
	os.Args = append([]string{"cclisp"}, argv...)

	t.Cleanup(func() { os.Args = saved })

	if err := options.Parse(); err != nil {
		t.Fatalf("Unexpected error parsing %v: %v", argv, err)
	}
}

func TestZeroBudget(t *testing.T) {
	parse(t, "-b", "0", "-c", "(+ 1 2)")

	if b, ok := options.Budget(); !ok || b != 0 {
		t.Fatalf("Expected an explicit zero budget; got %v, %v", b, ok)
	}

	if c := options.Command(); c != "(+ 1 2)" {
		t.Fatalf("Expected the command; got %q", c)
	}
}

func TestBudget(t *testing.T) {
	parse(t, "-b", "1.5", "-c", "(pass)", "a", "b")

	if b, ok := options.Budget(); !ok || b != 1500*time.Millisecond {
		t.Fatalf("Expected a 1.5s budget; got %v, %v", b, ok)
	}

	if a := options.Args(); len(a) != 2 || a[0] != "a" || a[1] != "b" {
		t.Fatalf("Expected arguments a b; got %v", a)
	}
}

func TestNoBudget(t *testing.T) {
	parse(t, "-c", "(pass)")

	if _, ok := options.Budget(); ok {
		t.Fatal("Expected no budget when -b is not given")
	}
}

func TestInvalidBudget(t *testing.T) {
	saved := os.Args
	os.Args = []string{"cclisp", "-b", "-1", "-c", "(pass)"}

	defer func() { os.Args = saved }()

	if err := options.Parse(); err == nil {
		t.Fatal("Expected a negative budget to be rejected")
	}
}
