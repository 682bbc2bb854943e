package infographic

import "strings"

// parseItems parses the "- " items at exactly baseIndent starting at lines[start].
// It returns the items and the index of the first line not consumed: the first
// non-blank line indented less than baseIndent, or len(lines).
// The result is nil when no item was found.
func (p *Parser) parseItems(lines []Line, start int, baseIndent int) ([]*Item, int) {
	var items []*Item

	i := start
	for i < len(lines) {
		l := lines[i]
		if l.Blank() {
			i++
			continue
		}

		// We exited the block
		if l.Indent < baseIndent {
			break
		}

		if l.Indent != baseIndent || !strings.HasPrefix(l.Content, itemPrefix) {
			p.log.Debugw("skipping line outside of an item", "line", l.Number, "content", l.Content)
			i++
			continue
		}

		// A new item, whose first field is in the same line as the marker
		item := &Item{}
		p.parseField(item, strings.TrimPrefix(l.Content, itemPrefix), l.Number)
		i++

		// The rest of the fields of the item are two spaces to the right
	fields:
		for i < len(lines) {
			l := lines[i]
			if l.Blank() {
				i++
				continue
			}

			switch {
			case l.Indent <= baseIndent:
				break fields

			case l.Indent == baseIndent+2 && l.Content == childrenKeyword:
				item.Children, i = p.parseItems(lines, i+1, baseIndent+4)

			case l.Indent == baseIndent+2:
				p.parseField(item, l.Content, l.Number)
				i++

			case l.Indent > baseIndent+2:
				p.log.Debugw("skipping nested content", "line", l.Number, "content", l.Content)
				i++

			default:
				break fields
			}
		}

		items = append(items, item)
	}

	return items, i
}

// parseRoot parses the single root item of hierarchy templates. Its fields are at
// baseIndent without a "- " marker and its children list starts after a "children"
// line at baseIndent. It returns nil when the root has neither label nor children.
func (p *Parser) parseRoot(lines []Line, start int, baseIndent int) *Item {
	item := &Item{}

	for i := start; i < len(lines); i++ {
		l := lines[i]
		if l.Blank() {
			continue
		}
		if l.Indent < baseIndent {
			break
		}
		if l.Indent != baseIndent {
			continue
		}

		if l.Content == childrenKeyword {
			item.Children, _ = p.parseItems(lines, i+1, baseIndent+2)
			break
		}
		p.parseField(item, l.Content, l.Number)
	}

	if len(item.Label) == 0 && len(item.Children) == 0 {
		p.log.Debugw("root has no label and no children, ignoring it")
		return nil
	}
	return item
}

// parseField sets the field of item described by "key value".
// Lines without a value and unknown keys are ignored.
func (p *Parser) parseField(item *Item, field string, lineNum int) {
	key, value, found := strings.Cut(field, blank)
	if !found {
		p.log.Debugw("field without value", "line", lineNum, "field", field)
		return
	}

	ref := fieldRef(item, key)
	if ref == nil {
		p.log.Debugw("unknown field", "line", lineNum, "key", key)
		return
	}
	*ref = value
}
