// Package ignore matches slash-separated relative paths against
// .gitignore-style pattern files.
package ignore

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Matcher reports whether a path is ignored. The zero value ignores nothing.
type Matcher struct {
	m gitignore.Matcher
}

// Load reads patterns from the file at path. Blank lines and comments are
// skipped; negations and directory-only patterns follow gitignore rules.
func Load(path string) (Matcher, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Matcher{}, err
	}
	return Parse(b), nil
}

// Parse builds a Matcher from the contents of a pattern file.
func Parse(data []byte) Matcher {
	var ps []gitignore.Pattern
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	if len(ps) == 0 {
		return Matcher{}
	}
	return Matcher{m: gitignore.NewMatcher(ps)}
}

// Match reports whether the file at rel is ignored.
func (m Matcher) Match(rel string) bool {
	return m.match(rel, false)
}

// MatchDir reports whether the directory at rel is ignored.
func (m Matcher) MatchDir(rel string) bool {
	return m.match(rel, true)
}

func (m Matcher) match(rel string, isDir bool) bool {
	if m.m == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimPrefix(rel, "./")
	if rel == "" || rel == "." {
		return false
	}
	return m.m.Match(strings.Split(rel, "/"), isDir)
}
