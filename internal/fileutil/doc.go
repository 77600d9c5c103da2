// Package fileutil provides file copy helpers shared by the version manager
// and packaging code. Snapshot copies use the verified variant so the history
// never records a corrupted artifact.
package fileutil
