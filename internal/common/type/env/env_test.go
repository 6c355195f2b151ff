// Released under an MIT license. See LICENSE.

package env_test

import (
	"testing"
	"time"

	"github.com/redstar-bot/cclisp/internal/common/type/env"
	"github.com/redstar-bot/cclisp/internal/common/type/num"
)

func TestLookupEnclosing(t *testing.T) {
	root := env.Root(nil, 0)
	root.Define("x", num.Int(1))

	inner := env.New(root)

	if r := inner.Lookup("x"); r == nil || !r.Get().Equal(num.Int(1)) {
		t.Fatalf("Expected x to be found in the enclosing env; got %v", r)
	}

	if inner.Lookup("y") != nil {
		t.Fatal("Expected y to be undefined")
	}

	if inner.Enclosing() != root {
		t.Fatal("Expected the enclosing env to be root")
	}
}

func TestAssign(t *testing.T) {
	root := env.Root(nil, 0)
	root.Define("x", num.Int(1))

	inner := env.New(root)

	if !inner.Assign("x", num.Int(2)) {
		t.Fatal("Expected x to be assigned")
	}

	if !root.Lookup("x").Get().Equal(num.Int(2)) {
		t.Fatal("Expected the binding in root to change")
	}

	if inner.Assign("y", num.Int(3)) {
		t.Fatal("Expected an undefined name not to be assigned")
	}
}

func TestAssignSealed(t *testing.T) {
	root := env.Root(nil, 0)
	root.Define("x", num.Int(1))
	root.Seal()

	run := env.Root(root, 0)
	inner := env.New(run)

	if !inner.Assign("x", num.Int(2)) {
		t.Fatal("Expected x to be assigned")
	}

	if !root.Lookup("x").Get().Equal(num.Int(1)) {
		t.Fatal("Expected the sealed binding to be unchanged")
	}

	if run.Public().Get("x") == nil {
		t.Fatal("Expected x to be shadowed in the env beneath the sealed one")
	}

	if !inner.Lookup("x").Get().Equal(num.Int(2)) {
		t.Fatal("Expected the new binding to be visible")
	}

	if !root.Assign("x", num.Int(5)) || !root.Lookup("x").Get().Equal(num.Int(5)) {
		t.Fatal("Expected a sealed env to assign its own bindings")
	}
}

func TestBudget(t *testing.T) {
	unlimited := env.Root(nil, 0)
	if unlimited.Expired() {
		t.Fatal("Expected a zero budget never to expire")
	}

	limited := env.Root(unlimited, time.Millisecond)
	inner := env.New(limited)

	time.Sleep(5 * time.Millisecond)

	if !inner.Expired() {
		t.Fatal("Expected a nested env to share its root's clock")
	}

	if budget, _ := inner.Budget(); budget != time.Millisecond {
		t.Fatalf("Expected a budget of 1ms; got %v", budget)
	}

	if env.Root(limited, 0).Expired() {
		t.Fatal("Expected a new root to start its own clock")
	}
}

func TestRemove(t *testing.T) {
	root := env.Root(nil, 0)
	root.Define("x", num.Int(1))

	if !env.New(root).Remove("x") || root.Lookup("x") != nil {
		t.Fatal("Expected x to be removed")
	}
}

func TestFrameUsesCallerClock(t *testing.T) {
	unlimited := env.Root(nil, 0)
	unlimited.Define("x", num.Int(1))

	caller := env.Root(unlimited, time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	frame := env.Frame(unlimited, caller)
	if !frame.Expired() {
		t.Fatal("Expected a frame to run on its caller's clock")
	}

	if frame.Lookup("x") == nil {
		t.Fatal("Expected a frame to see its scope's bindings")
	}

	if env.Frame(unlimited, nil).Expired() {
		t.Fatal("Expected a frame with no caller to keep its scope's clock")
	}
}

func TestRestart(t *testing.T) {
	e := env.Root(nil, 20*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if !e.Expired() {
		t.Fatal("Expected the budget to be spent")
	}

	e.Restart()

	if e.Expired() {
		t.Fatal("Expected a restarted clock to have budget left")
	}
}
