package rules

var all = []Rule{
	MustNew(1, "Using defer in a loop (can cause subtle bugs)",
		`\bfor\b[^{]*\{[^}]*\bdefer\b`),
	MustNew(2, "Modifying a slice while ranging over it",
		`for\s+.*:=\s+range\s+.*\n.*append\(`),
	MustNew(3, "Ignoring errors from function calls",
		`\n\s*[_]*\s*=\s*[a-zA-Z_]+\([^)]*\)\s*\n`),
	MustNew(4, "Unintended variable shadowing",
		`\bvar\s+\w+\s+\w+\s*=\s*.*\n\s*\w+\s*:=\s*.*`),
	MustNew(5, "Overusing getters and setters",
		`func\s+Get\w+\s*\(\s*\)\s*\w+\s*{`),
	MustNew(6, "Interface pollution: defining interfaces with too many methods",
		`type\s+\w+\s+interface\s*{\s*(\w+\s*\(.*\)\s*\w*\s*){5,}`),
	MustNew(7, "Returning interfaces instead of concrete types",
		`func\s+\w+\s*\(.*\)\s+interface\s*{`),
	MustNew(8, "Using 'any' type unnecessarily",
		`\bany\b`),
	// Style nit rather than a defect: any *Config struct is reported.
	MustNew(9, "Not using the functional options pattern for configuration",
		`type\s+\w+Config\s+struct\s*{`),
	MustNew(10, "Creating utility packages (e.g., 'utils', 'helpers')",
		`package\s+(utils|helpers)`),
	// Matches any "if x != nil {" block, not only slices.
	MustNew(11, "Not checking for nil slices before use",
		`if\s+\w+\s*!=\s*nil\s*{`),
	MustNew(12, "Using 'panic' for error handling",
		`\bpanic\(`),
	MustNew(13, "Not closing resources (e.g., files, HTTP responses)",
		`\b(os\.Open|http\.Get)\(.*\)`),
	MustNew(14, "Using the default HTTP client without timeout",
		`http\.Get\(`),
	// Negative lookahead; with '.' spanning newlines any later "-race" in the
	// file suppresses the match.
	MustNew(15, "Not using the '-race' flag during testing",
		`go\s+test\b(?!.*-race)`),
}

// All returns the catalog in reporting order.
func All() []Rule {
	out := make([]Rule, len(all))
	copy(out, all)
	return out
}

// IDs returns the rule IDs in catalog order.
func IDs() []int {
	ids := make([]int, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	return ids
}
