// Package fenced finds infographic DSL blocks embedded in Markdown documents,
// written as fenced code blocks with the "infographic" info string, and
// rewrites them in canonical form.
package fenced

import (
	"bytes"
	"strings"

	"github.com/hesusruiz/infographic/infographic"
	"github.com/hesusruiz/infographic/sliceedit"
)

const (
	openFence  = "```infographic"
	closeFence = "```"
)

// Block is a DSL text found inside a fence.
type Block struct {
	// Line is the 1-based line number of the opening fence
	Line int

	// Start and End delimit the DSL text in the source, End excluded.
	// The text ends with the newline preceding the closing fence.
	Start int
	End   int

	Text string
}

// Find returns the fenced infographic blocks of src, in order.
// Unterminated fences are ignored.
func Find(src []byte) []Block {
	var blocks []Block

	end := 0
	for _, pos := range sliceedit.FindAll(src, openFence) {

		// The fence must start a line, and not be inside the previous block
		if pos < end || (pos > 0 && src[pos-1] != '\n') {
			continue
		}

		// Nothing but blanks may follow the info string
		nl := bytes.IndexByte(src[pos:], '\n')
		if nl < 0 {
			continue
		}
		if len(bytes.TrimSpace(src[pos+len(openFence):pos+nl])) > 0 {
			continue
		}

		start := pos + nl + 1
		closing := findClosing(src, start)
		if closing < 0 {
			continue
		}

		blocks = append(blocks, Block{
			Line:  bytes.Count(src[:pos], []byte("\n")) + 1,
			Start: start,
			End:   closing,
			Text:  string(src[start:closing]),
		})
		end = closing
	}

	return blocks
}

// findClosing returns the offset of the line closing a fence whose content starts at start, or -1.
func findClosing(src []byte, start int) int {
	for lineStart := start; lineStart < len(src); {
		lineEnd := bytes.IndexByte(src[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(src)
		} else {
			lineEnd += lineStart
		}

		if string(bytes.TrimSpace(src[lineStart:lineEnd])) == closeFence {
			return lineStart
		}
		lineStart = lineEnd + 1
	}
	return -1
}

// Result summarizes a Format run.
type Result struct {
	Blocks  int // fenced blocks found
	Changed int // blocks rewritten
	Skipped int // blocks left as they were because their header is malformed
}

// Format rewrites every fenced block of src in canonical form using p.
// Blocks that do not parse are left untouched. src is not modified.
func Format(src []byte, p *infographic.Parser) ([]byte, Result) {
	var res Result

	buf := sliceedit.NewBuffer(src)
	for _, b := range Find(src) {
		res.Blocks++

		doc, err := p.Parse(strings.TrimSuffix(b.Text, "\n"))
		if err != nil {
			res.Skipped++
			continue
		}

		canonical := infographic.Serialize(doc) + "\n"
		if canonical == b.Text {
			continue
		}
		buf.Replace(b.Start, b.End, canonical)
		res.Changed++
	}

	return buf.Bytes(), res
}
