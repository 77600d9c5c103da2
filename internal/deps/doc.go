// Package deps reports the availability of external binaries. The validator
// resolves xmllint through this package once at construction time, so tool
// availability is an explicit capability rather than hidden global state.
package deps
