package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomistakes/gomistakes/internal/ignore"
)

func walkRel(t *testing.T, cfg Config) []string {
	t.Helper()
	var got []string
	err := Walk(cfg, ignore.Matcher{}, func(p string) {
		rel, err := filepath.Rel(cfg.Root, p)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	})
	require.NoError(t, err)
	return got
}

func TestWalk_SelectsGoFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello")
	writeFile(t, dir, "b.go", "package main\n")
	writeFile(t, dir, "c.md", "doc")
	writeFile(t, dir, "sub/d.go", "package sub\n")
	writeFile(t, dir, "sub/d_test.go", "package sub\n")

	assert.Equal(t, []string{"b.go", "sub/d.go", "sub/d_test.go"}, walkRel(t, Config{Root: dir}))
}

func TestWalk_ScansEverythingByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vendor/v.go", "")
	writeFile(t, dir, ".hidden/h.go", "")
	writeFile(t, dir, "api/service.pb.go", "")
	writeFile(t, dir, "main.go", "")

	got := walkRel(t, Config{Root: dir})
	assert.ElementsMatch(t, []string{".hidden/h.go", "api/service.pb.go", "main.go", "vendor/v.go"}, got)
}

func TestWalk_DefaultExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vendor/v.go", "")
	writeFile(t, dir, ".hidden/h.go", "")
	writeFile(t, dir, "_scratch/s.go", "")
	writeFile(t, dir, "testdata/t.go", "")
	writeFile(t, dir, "api/service.pb.go", "")
	writeFile(t, dir, "api/zz_generated.deepcopy.go", "")
	writeFile(t, dir, "main.go", "")

	got := walkRel(t, Config{Root: dir, DefaultExcludes: true})
	assert.Equal(t, []string{"main.go"}, got)
}

func TestWalk_WithIncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cmd/tool/main.go", "")
	writeFile(t, dir, "internal/x/x.go", "")
	writeFile(t, dir, "internal/x/x_test.go", "")

	got := walkRel(t, Config{Root: dir, IncludeGlobs: "internal/**"})
	assert.Equal(t, []string{"internal/x/x.go", "internal/x/x_test.go"}, got)

	got = walkRel(t, Config{Root: dir, ExcludeGlobs: "*_test.go"})
	assert.Equal(t, []string{"cmd/tool/main.go", "internal/x/x.go"}, got)

	// include globs never widen the extension filter
	writeFile(t, dir, "internal/x/notes.txt", "")
	got = walkRel(t, Config{Root: dir, IncludeGlobs: "**/*.txt"})
	assert.Empty(t, got)
}

func TestWalk_DoesNotFollowSymlinkedDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "real/x.go", "")
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "alias.go")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	assert.Equal(t, []string{"real/x.go"}, walkRel(t, Config{Root: dir}))
}

func TestWalk_SymlinkedFileIsSelected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "real.go", "")
	if err := os.Symlink(filepath.Join(dir, "real.go"), filepath.Join(dir, "link.go")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	assert.Equal(t, []string{"link.go", "real.go"}, walkRel(t, Config{Root: dir}))
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "")
	writeFile(t, dir, "b/b.go", "")
	writeFile(t, dir, "b/readme.txt", "")
	writeFile(t, dir, "vendor/c.go", "")
	writeFile(t, dir, ".gitignore", "b/\n")

	n, err := CountTargets(Config{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = CountTargets(Config{Root: dir, DefaultExcludes: true})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountTargets(Config{Root: dir, DefaultExcludes: true, RespectGitignore: true})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAllowedByGlobs(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		include string
		exclude string
		want    bool
	}{
		{name: "no globs", path: "a/b.go", want: true},
		{name: "include hit", path: "a/b.go", include: "a/**", want: true},
		{name: "include miss", path: "c/b.go", include: "a/**", want: false},
		{name: "exclude basename", path: "a/b_test.go", exclude: "*_test.go", want: false},
		{name: "exclude leading doublestar", path: "b_test.go", exclude: "**/*_test.go", want: false},
		{name: "exclude wins over include", path: "a/b.go", include: "a/**", exclude: "a/b.go", want: false},
		{name: "list with spaces", path: "x/y.go", include: "a/**, x/**", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{IncludeGlobs: tc.include, ExcludeGlobs: tc.exclude}
			assert.Equal(t, tc.want, allowedByGlobs(tc.path, cfg))
		})
	}
}

func TestWalk_FollowsSymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "real/a.go", "panic(1)\n")
	writeFile(t, dir, "real/sub/b.go", "")
	link := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "real"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, []string{"a.go", "sub/b.go"}, walkRel(t, Config{Root: link}))

	cfg, _ := quietConfig(link)
	got, err := ScanTree(cfg)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(link, "a.go"), got[0].File)
	assert.Equal(t, "panic(1)", got[0].Code)
}

func TestWalk_SymlinkedFileRootSelectsNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "panic(1)\n")
	link := filepath.Join(dir, "link.go")
	if err := os.Symlink(filepath.Join(dir, "a.go"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	assert.Empty(t, walkRel(t, Config{Root: link}))
}
