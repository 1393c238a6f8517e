// Package config loads gomistakes settings from local and global YAML files.
// CLI code merges them with flags (CLI > local > global) before building the
// engine configuration.
package config
