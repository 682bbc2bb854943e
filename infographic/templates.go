package infographic

import "strings"

const relationPrefix = "relation-"

// templateFields maps template name prefixes to the data field they use.
// Order matters: exact names are listed before the prefix that contains them.
var templateFields = []struct {
	prefix string
	exact  bool
	field  DataField
}{
	{"list-", false, Lists},
	{"sequence-", false, Sequences},
	{"compare-", false, Compares},
	{"chart-", false, Values},
	{relationPrefix, false, Nodes},
	{"hierarchy-structure", true, Items},
	{"hierarchy-", false, Root},
}

// DataFieldForTemplate returns the data field keyword expected by a template.
// Unknown templates use Items.
func DataFieldForTemplate(template string) DataField {
	for _, t := range templateFields {
		if t.exact && template == t.prefix {
			return t.field
		}
		if !t.exact && strings.HasPrefix(template, t.prefix) {
			return t.field
		}
	}
	return Items
}

// IsRelation reports whether template belongs to the relation family,
// which has a node list and a list of edges.
func IsRelation(template string) bool {
	return strings.HasPrefix(template, relationPrefix)
}

// ShowsValue reports whether the items of doc carry a numeric value worth editing.
func ShowsValue(doc *Document) bool {
	return strings.HasPrefix(doc.Template, "chart-") || doc.DataField == Values
}

// ShowsChildren reports whether the items of doc may have children.
func ShowsChildren(doc *Document) bool {
	return strings.HasPrefix(doc.Template, "compare-") ||
		strings.HasPrefix(doc.Template, "hierarchy-") ||
		doc.DataField == Root
}

// TemplateGroup is a family of templates sharing a layout style.
type TemplateGroup struct {
	Label     string
	Templates []string
}

// TemplateGroups is the catalog of known templates.
// Parsing accepts any template name; the catalog only serves pickers and listings.
var TemplateGroups = []TemplateGroup{
	{
		Label: "List",
		Templates: []string{
			"list-row-horizontal-icon-arrow",
			"list-column-done-list",
			"list-column-simple-vertical-arrow",
			"list-column-vertical-icon-arrow",
			"list-grid-badge-card",
			"list-grid-candy-card-lite",
			"list-grid-ribbon-card",
			"list-sector-plain-text",
			"list-zigzag-down-compact-card",
			"list-zigzag-down-simple",
			"list-zigzag-up-compact-card",
			"list-zigzag-up-simple",
		},
	},
	{
		Label: "Sequence",
		Templates: []string{
			"sequence-timeline-rounded-rect-node",
			"sequence-timeline-simple",
			"sequence-ascending-stairs-3d-underline-text",
			"sequence-ascending-steps",
			"sequence-circular-simple",
			"sequence-color-snake-steps-horizontal-icon-line",
			"sequence-cylinders-3d-simple",
			"sequence-filter-mesh-simple",
			"sequence-funnel-simple",
			"sequence-horizontal-zigzag-underline-text",
			"sequence-mountain-underline-text",
			"sequence-pyramid-simple",
			"sequence-roadmap-vertical-plain-text",
			"sequence-roadmap-vertical-simple",
			"sequence-snake-steps-compact-card",
			"sequence-snake-steps-simple",
			"sequence-snake-steps-underline-text",
			"sequence-stairs-front-compact-card",
			"sequence-stairs-front-pill-badge",
			"sequence-zigzag-pucks-3d-simple",
			"sequence-zigzag-steps-underline-text",
		},
	},
	{
		Label: "Chart",
		Templates: []string{
			"chart-bar-plain-text",
			"chart-column-simple",
			"chart-line-plain-text",
			"chart-pie-compact-card",
			"chart-pie-donut-pill-badge",
			"chart-pie-donut-plain-text",
			"chart-pie-plain-text",
			"chart-wordcloud",
		},
	},
	{
		Label: "Compare",
		Templates: []string{
			"compare-binary-horizontal-badge-card-arrow",
			"compare-binary-horizontal-simple-fold",
			"compare-binary-horizontal-underline-text-vs",
			"compare-hierarchy-left-right-circle-node-pill-badge",
			"compare-hierarchy-row-letter-card-rounded-rect-node",
			"compare-quadrant-quarter-circular",
			"compare-quadrant-quarter-simple-card",
			"compare-swot",
		},
	},
	{
		Label: "Hierarchy",
		Templates: []string{
			"hierarchy-mindmap-branch-gradient-capsule-item",
			"hierarchy-mindmap-level-gradient-compact-card",
			"hierarchy-structure",
			"hierarchy-tree-curved-line-rounded-rect-node",
			"hierarchy-tree-tech-style-badge-card",
			"hierarchy-tree-tech-style-capsule-item",
		},
	},
	{
		Label: "Relation",
		Templates: []string{
			"relation-dagre-flow-tb-animated-badge-card",
			"relation-dagre-flow-tb-animated-simple-circle-node",
			"relation-dagre-flow-tb-badge-card",
			"relation-dagre-flow-tb-simple-circle-node",
		},
	},
}

// Templates returns every template of the catalog, group after group.
func Templates() []string {
	var all []string
	for _, g := range TemplateGroups {
		all = append(all, g.Templates...)
	}
	return all
}
