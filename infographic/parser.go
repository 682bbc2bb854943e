package infographic

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	headerKeyword   = "infographic"
	dataKeyword     = "data"
	themeKeyword    = "theme"
	rootKeyword     = "root"
	childrenKeyword = "children"
	titlePrefix     = "title "
	descPrefix      = "desc "
	orderPrefix     = "order "
	itemPrefix      = "- "

	// Indentation of the keywords directly inside the data and theme sections
	sectionIndent = 2
	// Indentation of the content of a collection keyword
	collectionIndent = 4
)

// Parser converts DSL text into a Document.
// A Parser holds no per-call state and can be used from several goroutines.
type Parser struct {
	log *zap.SugaredLogger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser report skipped input at debug level.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.log = logger
		}
	}
}

// NewParser creates a Parser. By default nothing is logged.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		log: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text with a default Parser.
func Parse(text string) (*Document, error) {
	return NewParser().Parse(text)
}

// Parse builds a Document from text.
// The only error is a *SyntaxError wrapping ErrMalformedHeader.
func (p *Parser) Parse(text string) (*Document, error) {
	lines := splitLines(text)

	template, err := parseHeader(lines[0])
	if err != nil {
		p.log.Debugw("rejecting document", "error", err)
		return nil, err
	}

	doc := &Document{
		Template:  template,
		DataField: Items,
	}

	dataLine, themeLine := locateSections(lines)

	if dataLine >= 0 {
		end := len(lines)
		if themeLine > dataLine {
			end = themeLine
		}
		p.parseData(doc, lines[dataLine+1:end])
	} else {
		p.log.Debugw("no data section", "template", template)
	}

	if themeLine >= 0 {
		doc.Theme = p.parseTheme(lines, themeLine)
	}

	if doc.Items == nil {
		doc.Items = []*Item{}
	}

	return doc, nil
}

// parseHeader extracts the template name from the first line.
func parseHeader(line Line) (string, error) {
	if !strings.HasPrefix(line.Content, headerKeyword+blank) {
		return "", &SyntaxError{
			Line:   line.Number,
			Column: line.Indent + 1,
			Msg:    fmt.Sprintf("expected %q, found %q", headerKeyword+" <template>", line.Content),
			Err:    ErrMalformedHeader,
		}
	}
	return strings.TrimSpace(strings.TrimPrefix(line.Content, headerKeyword+blank)), nil
}

// locateSections returns the index of the first zero-indent "data" line and of the first
// zero-indent line starting with "theme", or -1 when absent.
// The header line is not considered.
func locateSections(lines []Line) (dataLine int, themeLine int) {
	dataLine, themeLine = -1, -1

	for i := 1; i < len(lines); i++ {
		l := lines[i]
		if l.Blank() || l.Indent != 0 {
			continue
		}
		if l.Content == dataKeyword {
			if dataLine < 0 {
				dataLine = i
			}
			continue
		}
		if themeLine < 0 && strings.HasPrefix(l.Content, themeKeyword) {
			themeLine = i
		}
	}

	return dataLine, themeLine
}

// parseData fills the document from the lines of the data section.
func (p *Parser) parseData(doc *Document, lines []Line) {

scan:
	for i, l := range lines {
		if l.Blank() || l.Indent != sectionIndent {
			continue
		}

		switch {
		case strings.HasPrefix(l.Content, titlePrefix):
			doc.Title = strings.TrimPrefix(l.Content, titlePrefix)

		case strings.HasPrefix(l.Content, descPrefix):
			doc.Desc = strings.TrimPrefix(l.Content, descPrefix)

		case strings.HasPrefix(l.Content, orderPrefix):
			// Accepted for compatibility, has no effect

		case l.Content == rootKeyword:
			doc.DataField = Root
			if root := p.parseRoot(lines, i+1, collectionIndent); root != nil {
				doc.Items = []*Item{root}
			}
			break scan

		default:
			if field, ok := listFieldFor(l.Content); ok {
				doc.DataField = field
				doc.Items, _ = p.parseItems(lines, i+1, collectionIndent)
				break scan
			}
			p.log.Debugw("unknown data keyword", "line", l.Number, "content", l.Content)
		}
	}

	// Relation templates have two sibling collections, so they are scanned again
	if IsRelation(doc.Template) {
		p.parseRelationSections(doc, lines)
	}
}
