// Package engine walks a directory tree, selects Go source files and applies
// the rule catalog to each one. Scanning is sequential: findings come out
// grouped by file in walk order, and within a file grouped by rule.
// External consumers should use the facade in pkg/core.
package engine
