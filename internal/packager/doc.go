// Package packager orchestrates the packaging protocol: snapshot, build or
// patch the artifact text, validate, repair at most once, re-validate.
//
// Validation failures are part of the returned result rather than errors, so
// "generated but needs attention" is representable. Filesystem and snapshot
// failures are fatal and abort before the current artifact is overwritten.
// Calls are self-contained and re-read the artifact from disk; a per-project
// file lock serializes mutations from concurrent processes on one host.
package packager
