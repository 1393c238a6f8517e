package core

import (
	"github.com/gomistakes/gomistakes/internal/engine"
	"github.com/gomistakes/gomistakes/internal/rules"
	"github.com/gomistakes/gomistakes/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Finding = types.Finding
type Rule = rules.Rule
type Result = engine.Result

// LineUnavailable is the Finding.Code placeholder for out-of-range lines.
const LineUnavailable = types.LineUnavailable

// Scan walks cfg.Root and returns the findings for every Go file in walk order.
func Scan(cfg Config) ([]Finding, error) {
	return engine.ScanTree(cfg)
}

// ScanWithStats is Scan plus file counts and timing.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// ScanFile returns the findings for a single file.
func ScanFile(cfg Config, path string) []Finding {
	return engine.ScanFile(cfg, path)
}

// Rules returns the built-in catalog in reporting order.
func Rules() []Rule { return rules.All() }
