package main

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Lexers used for the output of the commands. The DSL has no lexer of its own,
// YAML is the closest indentation based grammar.
const (
	jsonLexer     = "json"
	dslLexer      = "yaml"
	markdownLexer = "markdown"
)

// highlight writes source to w with terminal color escapes.
func highlight(w io.Writer, source string, lexerName string, styleName string) error {

	// Determine lexer.
	l := lexers.Get(lexerName)
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	s := styles.Get(styleName)

	f := formatters.Get("terminal256")
	if f == nil {
		f = formatters.Fallback
	}

	it, err := l.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return f.Format(w, s, it)
}
