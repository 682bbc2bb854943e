package infographic

import "strings"

const blank = " "

// Line is a source line split into its indentation and content.
type Line struct {
	// Number is 1-based, counting the header line
	Number int

	// Indent is the number of leading spaces. Tabs are not indentation.
	Indent int

	// Content is the line without leading and trailing whitespace
	Content string
}

// Blank reports whether the line has no content.
func (l Line) Blank() bool {
	return len(l.Content) == 0
}

// ScanLine returns the number of leading spaces of raw and its trimmed content.
func ScanLine(raw string) (indent int, content string) {
	rest := strings.TrimLeft(raw, blank)
	indent = len(raw) - len(rest)
	return indent, strings.TrimSpace(rest)
}

// splitLines scans every line of text.
func splitLines(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, len(rawLines))
	for i, raw := range rawLines {
		indent, content := ScanLine(raw)
		lines[i] = Line{Number: i + 1, Indent: indent, Content: content}
	}
	return lines
}
