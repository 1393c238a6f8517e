package types

// LineUnavailable is reported as Finding.Code when the computed line of a
// match lies past the last line of the file.
const LineUnavailable = "<line unavailable>"

// Finding describes one occurrence of a rule in a scanned file. Line is the
// 1-based line on which the match begins, and Code is that line trimmed of
// surrounding whitespace.
type Finding struct {
	File    string
	Line    int
	RuleID  int
	Mistake string
	Code    string
}
