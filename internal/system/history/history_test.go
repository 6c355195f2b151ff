// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	called := false

	err := Load(filepath.Join(t.TempDir(), "absent"), func(io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if called {
		t.Fatal("Expected read not to be called for a missing file")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := Save(path, func(w io.Writer) (int, error) {
		return w.Write([]byte("(+ 1 2)\n"))
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Fatalf("Expected an owner-only file; got %v", perm)
	}

	var b bytes.Buffer

	err = Load(path, func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("Expected saved history; got %q", b.String())
	}
}
