package rules

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Options applied to every rule pattern: ^/$ anchor at line boundaries and
// '.' also matches newlines, so a single pattern can span several lines.
const Options = regexp2.Multiline | regexp2.Singleline

// Rule is a heuristic pattern with the description reported when it matches.
type Rule struct {
	ID          int
	Description string
	Pattern     string

	re *regexp2.Regexp
}

// New compiles pattern into a Rule.
func New(id int, description, pattern string) (Rule, error) {
	if id <= 0 {
		return Rule{}, fmt.Errorf("rule %d: id must be positive", id)
	}
	re, err := regexp2.Compile(pattern, Options)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %d: compile pattern: %w", id, err)
	}
	return Rule{ID: id, Description: description, Pattern: pattern, re: re}, nil
}

// MustNew is like New but panics if the pattern does not compile.
func MustNew(id int, description, pattern string) Rule {
	r, err := New(id, description, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Starts returns the rune offsets in text at which each non-overlapping match
// of r begins, left to right.
func (r Rule) Starts(text string) ([]int, error) {
	if r.re == nil {
		return nil, fmt.Errorf("rule %d: not compiled", r.ID)
	}
	var out []int
	m, err := r.re.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = r.re.FindNextMatch(m) {
		out = append(out, m.Index)
	}
	if err != nil {
		return nil, fmt.Errorf("rule %d: %w", r.ID, err)
	}
	return out, nil
}
