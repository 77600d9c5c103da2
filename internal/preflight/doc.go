// Package preflight verifies the filesystem and tool environment before
// packaging mutations run, so failures surface as clear diagnostics instead of
// partial writes.
package preflight
