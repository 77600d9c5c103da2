package preflight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	res := CheckDirectoryAccess("Projects directory", dir)
	if !res.Passed {
		t.Fatalf("expected writable temp dir to pass: %#v", res)
	}

	missing := CheckDirectoryAccess("Projects directory", filepath.Join(dir, "absent"))
	if missing.Passed {
		t.Fatal("expected missing directory to fail")
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	notDir := CheckDirectoryAccess("Projects directory", file)
	if notDir.Passed {
		t.Fatal("expected plain file to fail directory check")
	}
}

func TestCheckFreeSpace(t *testing.T) {
	res := CheckFreeSpace("Projects disk space", t.TempDir())
	if !res.Passed {
		t.Skipf("temp filesystem unexpectedly full: %s", res.Detail)
	}
	if res.Detail == "" {
		t.Fatal("expected detail message")
	}
}
