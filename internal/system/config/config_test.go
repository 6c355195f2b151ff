// Released under an MIT license. See LICENSE.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redstar-bot/cclisp/internal/system/config"
)

const document = `
history: /tmp/history
locale: de-DE
max_runtime: 2.5
identity:
  username: ann
  authornick: bob
`

func TestParse(t *testing.T) {
	c := config.Default()

	if err := config.Parse([]byte(document), c); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c.History != "/tmp/history" || c.Locale != "de-DE" {
		t.Fatalf("Expected history and locale to be set; got %+v", c)
	}

	if c.Identity["username"] != "ann" || c.Identity["authornick"] != "bob" {
		t.Fatalf("Expected identity values; got %v", c.Identity)
	}

	if b := c.Budget(); b != 2500*time.Millisecond {
		t.Fatalf("Expected a 2.5s budget; got %v", b)
	}
}

func TestParseUnknownIdentity(t *testing.T) {
	err := config.Parse([]byte("identity:\n  password: hunter2\n"), config.Default())
	if !errors.Is(err, config.ErrUnknownIdentity) {
		t.Fatalf("Expected %v; got %v", config.ErrUnknownIdentity, err)
	}
}

func TestParseNegativeRuntime(t *testing.T) {
	if err := config.Parse([]byte("max_runtime: -1\n"), config.Default()); err == nil {
		t.Fatal("Expected a negative max_runtime to be rejected")
	}
}

func TestParseMalformed(t *testing.T) {
	if err := config.Parse([]byte("identity: [\n"), config.Default()); err == nil {
		t.Fatal("Expected a malformed document to be rejected")
	}
}

func TestLoad(t *testing.T) {
	c, err := config.Load("")
	if err != nil || c.Budget() != 0 {
		t.Fatalf("Expected defaults for an empty path; got %+v (%v)", c, err)
	}

	path := filepath.Join(t.TempDir(), "cclisp.yaml")
	if err := os.WriteFile(path, []byte(document), 0o600); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c, err = config.Load(path)
	if err != nil || c.Locale != "de-DE" {
		t.Fatalf("Expected the file to be loaded; got %+v (%v)", c, err)
	}

	if _, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected a missing file to be an error")
	}
}
