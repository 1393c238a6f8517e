// Package rules holds the fixed catalog of common Go mistakes reported by
// gomistakes. Each rule is a regular expression evaluated against the whole
// text of a file; detection is purely textual and deliberately heuristic.
package rules
