// Package gomistakes provides the command-line interface for gomistakes.
// The root command scans a directory; subcommands list the rule catalog,
// write a starter config file and generate shell completions.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/gomistakes/gomistakes/cmd/gomistakes"
//	func main() { gomistakes.Execute() }
package gomistakes
