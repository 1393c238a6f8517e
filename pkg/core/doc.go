// Package core provides a small, stable facade over the gomistakes engine for
// programs that want findings without going through the CLI.
//
// Example:
//
//	findings, err := core.Scan(core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	for _, f := range findings { fmt.Println(f.File, f.Line, f.Mistake) }
package core
