package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"vidpack/internal/config"
	"vidpack/internal/deps"
)

// Result captures the outcome of one preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// minFreeBytes is the floor below which mutations are refused: an embedded
// video can easily run to tens of megabytes, and a failed snapshot copy on a
// full disk would abort mid-mutation anyway.
const minFreeBytes = 64 << 20

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has room for a snapshot
// plus a rewritten artifact.
func CheckFreeSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minFreeBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: only %d bytes free)", path, free)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckAll evaluates every preflight concern for the given config: directory
// access, disk headroom, and external binary availability.
func CheckAll(cfg *config.Config) ([]Result, []deps.Status) {
	results := []Result{
		CheckDirectoryAccess("Projects directory", cfg.Paths.ProjectsDir),
		CheckFreeSpace("Projects disk space", cfg.Paths.ProjectsDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	binaries := deps.CheckBinaries(deps.Default(cfg.Validator.XMLLintBin))
	return results, binaries
}
