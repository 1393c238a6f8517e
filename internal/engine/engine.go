package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/gomistakes/gomistakes/internal/ignore"
	"github.com/gomistakes/gomistakes/internal/logging"
	"github.com/gomistakes/gomistakes/internal/rules"
	"github.com/gomistakes/gomistakes/internal/types"
)

// DefaultExtension selects Go source files.
const DefaultExtension = ".go"

// Config controls which files are scanned and where diagnostics go.
type Config struct {
	Root      string
	Extension string

	IncludeGlobs     string
	ExcludeGlobs     string
	DefaultExcludes  bool
	RespectGitignore bool

	// Rules overrides the built-in catalog. Nil means rules.All().
	Rules []rules.Rule

	// Diagnostics receives one "Error reading" line per unreadable file.
	// Nil means os.Stdout.
	Diagnostics io.Writer
	Logger      hclog.Logger
}

func (c Config) extension() string {
	if c.Extension == "" {
		return DefaultExtension
	}
	return c.Extension
}

func (c Config) rules() []rules.Rule {
	if c.Rules == nil {
		return rules.All()
	}
	return c.Rules
}

func (c Config) diagnostics() io.Writer {
	if c.Diagnostics == nil {
		return os.Stdout
	}
	return c.Diagnostics
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesFailed  int
	Duration     time.Duration
}

// RuleIDs returns the IDs of the rules a scan with cfg applies.
func RuleIDs(cfg Config) []int {
	rs := cfg.rules()
	ids := make([]int, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

// ScanTree walks cfg.Root and returns the findings of every selected file,
// concatenated in walk order.
func ScanTree(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats is ScanTree plus file counts and timing. A root that does
// not exist yields an empty result, not an error.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	log := logging.OrNull(cfg.Logger)

	ign, err := loadIgnore(cfg)
	if err != nil {
		return result, err
	}

	started := time.Now()
	err = Walk(cfg, ign, func(p string) {
		found, ok := scanFile(cfg, p)
		result.FilesScanned++
		if !ok {
			result.FilesFailed++
			return
		}
		result.Findings = append(result.Findings, found...)
	})
	if err != nil {
		return result, err
	}
	result.Duration = time.Since(started)
	log.Debug("scan finished",
		"root", cfg.Root,
		"files", result.FilesScanned,
		"failed", result.FilesFailed,
		"findings", len(result.Findings),
		"duration", result.Duration)
	return result, nil
}

// ScanFile applies every rule to the file at path. Findings are grouped by
// rule in catalog order, then by match position. A file that cannot be read
// or is not valid UTF-8 is reported on cfg.Diagnostics and yields no
// findings.
func ScanFile(cfg Config, path string) []types.Finding {
	found, _ := scanFile(cfg, path)
	return found
}

func scanFile(cfg Config, path string) ([]types.Finding, bool) {
	text, err := readSource(path)
	if err != nil {
		_, _ = fmt.Fprintf(cfg.diagnostics(), "Error reading %s: %v\n", path, err)
		logging.OrNull(cfg.Logger).Debug("skipping unreadable file", "path", path, "error", err)
		return nil, false
	}
	return scanText(path, text, cfg.rules()), true
}

// readSource returns the file contents with \r\n and lone \r line endings
// normalized to \n.
func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid UTF-8 at byte %d", invalidOffset(b))
	}
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

func scanText(path, text string, rs []rules.Rule) []types.Finding {
	lines := splitLines(text)
	newlines := newlineOffsets(text)

	var out []types.Finding
	for _, r := range rs {
		starts, err := r.Starts(text)
		if err != nil {
			panic(fmt.Sprintf("evaluate rule %d on %s: %v", r.ID, path, err))
		}
		for _, start := range starts {
			idx := sort.SearchInts(newlines, start)
			out = append(out, types.Finding{
				File:    path,
				Line:    idx + 1,
				RuleID:  r.ID,
				Mistake: r.Description,
				Code:    lineText(lines, idx),
			})
		}
	}
	return out
}

// splitLines splits text into newline-terminated lines; a trailing newline
// does not start an extra empty line.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// newlineOffsets returns the rune offsets of every '\n' in text, ascending.
// Match offsets are rune-based, so the count of entries below a match start
// is its zero-based line index.
func newlineOffsets(text string) []int {
	var out []int
	i := 0
	for _, r := range text {
		if r == '\n' {
			out = append(out, i)
		}
		i++
	}
	return out
}

func lineText(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return types.LineUnavailable
	}
	return strings.TrimFunc(lines[idx], isStripSpace)
}

// isStripSpace reports whitespace including the ASCII file, group, record and
// unit separators, which unicode.IsSpace leaves alone.
func isStripSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func loadIgnore(cfg Config) (ignore.Matcher, error) {
	if !cfg.RespectGitignore {
		return ignore.Matcher{}, nil
	}
	m, err := ignore.Load(filepath.Join(cfg.Root, ".gitignore"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return m, fmt.Errorf("load .gitignore: %w", err)
	}
	return m, nil
}
