package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKeyOfStable(t *testing.T) {
	a := KeyOf([]byte("program"))
	b := KeyOf([]byte("program"))
	c := KeyOf([]byte("program2"))

	if a != b {
		t.Fatal("identical input produced different keys")
	}

	if a == c {
		t.Fatal("different input produced identical keys")
	}
}

func TestStoreAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "emit.db")

	c, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer c.Close()

	key := KeyOf([]byte("input"))

	if _, ok := c.Lookup(key); ok {
		t.Fatal("lookup hit in an empty cache")
	}

	if err := c.Store(key, "void main() {}\n"); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	text, ok := c.Lookup(key)
	if !ok {
		t.Fatal("lookup missed a stored entry")
	}

	if text != "void main() {}\n" {
		t.Fatalf("lookup returned %q", text)
	}
}

func TestEntriesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emit.db")
	key := KeyOf([]byte("input"))

	c, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if err := c.Store(key, "text"); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	c, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer c.Close()

	if text, ok := c.Lookup(key); !ok || text != "text" {
		t.Fatalf("entry lost across reopen: %q, %v", text, ok)
	}
}

func TestClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emit.db")

	c, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	c.Close()

	if err := Clean(path); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("database still present after clean")
	}

	// Cleaning an already-clean project is not an error.
	if err := Clean(path); err != nil {
		t.Fatalf("second clean failed: %v", err)
	}
}
