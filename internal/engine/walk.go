package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomistakes/gomistakes/internal/ignore"
)

// Walk traverses cfg.Root and invokes visit with the path of each selected
// file, in filepath.WalkDir order. Unreadable directories and a missing root
// are skipped silently. Symlinked directories below the root are not
// followed; a root that is itself a symlink to a directory is.
func Walk(cfg Config, ign ignore.Matcher, visit func(path string)) error {
	ext := cfg.extension()
	root := walkRoot(cfg.Root)
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p == root {
			// only directories are walked; a file root selects nothing
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			if ign.MatchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if st, err := os.Stat(p); err == nil && st.IsDir() {
				return nil
			}
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(filepath.ToSlash(rel))) {
			return nil
		}
		visit(p)
		return nil
	})
}

// walkRoot returns the path WalkDir should start from. WalkDir does not
// follow a symlinked root, but Lstat resolves the link when the path ends in
// a separator, and joined entry paths still read as root/name.
func walkRoot(root string) string {
	fi, err := os.Lstat(root)
	if err != nil || fi.Mode()&fs.ModeSymlink == 0 {
		return root
	}
	if st, err := os.Stat(root); err == nil && st.IsDir() {
		return root + string(filepath.Separator)
	}
	return root
}

// CountTargets returns the number of files a scan with cfg would read.
func CountTargets(cfg Config) (int, error) {
	ign, err := loadIgnore(cfg)
	if err != nil {
		return 0, err
	}
	n := 0
	err = Walk(cfg, ign, func(string) { n++ })
	return n, err
}
