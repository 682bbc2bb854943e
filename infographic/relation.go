package infographic

const relationsKeyword = "relations"

// parseRelationSections scans the data section of a relation template for the
// "nodes" and "relations" keywords, in any order. Both are optional.
// Whatever the generic scan found before is discarded.
func (p *Parser) parseRelationSections(doc *Document, lines []Line) {
	doc.Items = nil
	doc.Relations = nil

	i := 0
	for i < len(lines) {
		l := lines[i]
		if l.Blank() || l.Indent != sectionIndent {
			i++
			continue
		}

		switch l.Content {
		case string(Nodes):
			var nodes []*Item
			doc.DataField = Nodes
			nodes, i = p.parseItems(lines, i+1, collectionIndent)
			doc.Items = append(doc.Items, nodes...)

		case relationsKeyword:
			var edges []Relation
			edges, i = p.parseEdges(lines, i+1)
			doc.Relations = append(doc.Relations, edges...)

		default:
			i++
		}
	}
}

// parseEdges captures every line indented at least collectionIndent as an opaque edge,
// until the next section keyword. Other lines are skipped.
// It returns the edges and the index of the first line not consumed.
func (p *Parser) parseEdges(lines []Line, start int) ([]Relation, int) {
	var edges []Relation

	i := start
	for ; i < len(lines); i++ {
		l := lines[i]
		if l.Blank() {
			continue
		}
		if l.Indent == sectionIndent {
			break
		}
		if l.Indent < collectionIndent {
			p.log.Debugw("skipping line inside relations", "line", l.Number, "content", l.Content)
			continue
		}
		edges = append(edges, Relation{Raw: l.Content})
	}

	return edges, i
}
