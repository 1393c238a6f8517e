package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/gomistakes/gomistakes/internal/rules"
	"github.com/gomistakes/gomistakes/internal/types"
)

// NoFindings is printed instead of the finding list when a scan is clean.
const NoFindings = "No common mistakes found!"

// PrintOptions controls terminal styling of PrintFindings.
type PrintOptions struct {
	NoColor bool
}

// PrintHeader writes the banner shown before a scan starts.
func PrintHeader(w io.Writer, root string) {
	fmt.Fprintf(w, "Scanning Go project at %s...\n\n", root)
}

// PrintFindings writes findings in the order given, two lines each:
//
//	[path:line] description
//	  → offending line
func PrintFindings(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, NoFindings)
		return
	}
	loc := color.New(color.FgCyan)
	msg := color.New(color.FgYellow)
	if opts.NoColor {
		loc.DisableColor()
		msg.DisableColor()
	} else {
		loc.EnableColor()
		msg.EnableColor()
	}
	for _, f := range findings {
		code := f.Code
		if !opts.NoColor && code != types.LineUnavailable {
			code = highlightLine(code, f.File)
		}
		fmt.Fprintf(w, "%s %s\n", loc.Sprint("["+f.File+":"+strconv.Itoa(f.Line)+"]"), msg.Sprint(f.Mistake))
		fmt.Fprintf(w, "  → %s\n", code)
	}
}

// PrintRules writes the catalog as a table.
func PrintRules(w io.Writer, rs []rules.Rule) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Description")
	for _, r := range rs {
		if err := table.Append([]string{strconv.Itoa(r.ID), r.Description}); err != nil {
			return err
		}
	}
	return table.Render()
}

func highlightLine(line string, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		if ext := filepath.Ext(filename); ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return line
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
