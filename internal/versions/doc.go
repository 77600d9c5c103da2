// Package versions maintains the append-only snapshot history of a project's
// artifact. A snapshot is taken before every overwrite, so the version
// directory always holds the full mutation history up to, but not including,
// the current artifact.
package versions
