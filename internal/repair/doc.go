// Package repair rewrites known malformation classes out of artifact text.
//
// It is deliberately not a recovering XML parser: the rules are a bounded,
// ordered list scoped to the malformations the artifact shell's templating can
// actually produce, each independently testable and idempotent. Callers
// re-validate after a repair pass to decide whether it helped.
package repair
