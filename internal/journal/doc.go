// Package journal persists a history of packaging operations in SQLite so
// operators can see which builds and updates required repair or produced
// invalid artifacts. The journal is observational only: packaging semantics
// never depend on it, and a disabled journal changes nothing but visibility.
package journal
