package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteMedia fills the target path with size bytes of deterministic filler
// derived from the file name, standing in for generated media. Distinct names
// produce distinct bytes, so tests can tell a replaced embed from the
// original. A size <= 0 writes a single byte.
func WriteMedia(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	name := filepath.Base(path)
	seed := byte(0)
	for i := 0; i < len(name); i++ {
		seed += name[i]
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = seed + byte(i%251)
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
