package versions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"vidpack/internal/fileutil"
)

// DirName is the per-project directory holding snapshots.
const DirName = "versions"

// ErrSnapshotFailed marks a snapshot that could not be written. Callers must
// abort the enclosing mutation: overwriting the current artifact without a
// snapshot would punch a hole in the version history.
var ErrSnapshotFailed = errors.New("snapshot failed")

// Entry describes one snapshot on disk.
type Entry struct {
	Number int
	Path   string
	Size   int64
}

// Snapshot copies the current artifact into the project's version directory as
// <stem>_v<N>.<ext>, where N is one past the number of existing snapshots.
// Numbers are never reused: entries removed out-of-band leave gaps rather than
// causing renumbering. Single writer per project is assumed; two concurrent
// snapshots could read the same count.
func Snapshot(projectDir, artifactPath string) (string, error) {
	if _, err := os.Stat(artifactPath); err != nil {
		return "", fmt.Errorf("%w: stat current artifact: %v", ErrSnapshotFailed, err)
	}

	dir := filepath.Join(projectDir, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create version directory: %v", ErrSnapshotFailed, err)
	}

	count, err := countEntries(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	next := count + 1

	base := filepath.Base(artifactPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	target := filepath.Join(dir, fmt.Sprintf("%s_v%d%s", stem, next, ext))

	if err := fileutil.CopyFileVerified(artifactPath, target); err != nil {
		return "", fmt.Errorf("%w: copy to %s: %v", ErrSnapshotFailed, target, err)
	}
	return target, nil
}

// List returns the project's snapshots ordered by version number. A missing
// version directory yields an empty list.
func List(projectDir string) ([]Entry, error) {
	dir := filepath.Join(projectDir, DirName)
	items, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read version directory: %w", err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		number, ok := parseNumber(item.Name())
		if !ok {
			continue
		}
		info, err := item.Info()
		if err != nil {
			return nil, fmt.Errorf("stat snapshot %s: %w", item.Name(), err)
		}
		entries = append(entries, Entry{
			Number: number,
			Path:   filepath.Join(dir, item.Name()),
			Size:   info.Size(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Number < entries[j].Number })
	return entries, nil
}

func countEntries(dir string) (int, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read version directory: %w", err)
	}
	count := 0
	for _, item := range items {
		if !item.IsDir() {
			count++
		}
	}
	return count, nil
}

// parseNumber extracts N from a "<stem>_v<N>.<ext>" snapshot name.
func parseNumber(name string) (int, bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndex(stem, "_v")
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(stem[idx+2:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
