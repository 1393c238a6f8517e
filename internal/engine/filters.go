package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

var defaultExcludeDirs = map[string]bool{
	"vendor":       true,
	"testdata":     true,
	"node_modules": true,
	"third_party":  true,
	"dist":         true,
	"build":        true,
	"bin":          true,
}

// suffixes of generated Go sources skipped when default excludes are enabled
var defaultExcludeFileSuffixes = []string{
	".pb.go", ".pb.gw.go", "_gen.go", ".gen.go", "_string.go",
}

// isDefaultDirExcluded also skips the directories the go tool ignores:
// names starting with "." or "_".
func isDefaultDirExcluded(name string) bool {
	if defaultExcludeDirs[name] {
		return true
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isDefaultFileExcluded(lowerRel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	base := lowerRel
	if i := strings.LastIndex(lowerRel, "/"); i >= 0 {
		base = lowerRel[i+1:]
	}
	return strings.HasPrefix(base, "zz_generated")
}

// allowedByGlobs returns true if relPath passes the include/exclude globs.
// Include globs are comma-separated and, if provided, act as a positive
// filter. Exclude globs are subtracted last.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := filepath.ToSlash(relPath)
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
