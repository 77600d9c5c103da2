// Package svgcheck validates the structure of packaged SVG artifacts.
//
// The primary strategy shells out to xmllint in strict mode; when the tool is
// missing or hangs, checks downgrade to a conservative built-in pass whose
// results are labelled as basic validation so callers can tell authoritative
// results from best-effort ones. All structural outcomes travel as data in the
// Result; only I/O failures reading the artifact surface as errors.
package svgcheck
