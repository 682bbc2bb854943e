package infographic

import "testing"

func TestDataFieldForTemplate(t *testing.T) {
	tests := []struct {
		template string
		want     DataField
	}{
		{"list-row-simple-horizontal-arrow", Lists},
		{"sequence-timeline-simple", Sequences},
		{"compare-swot", Compares},
		{"chart-pie-plain-text", Values},
		{"relation-dagre-flow-tb-badge-card", Nodes},
		{"hierarchy-structure", Items},
		{"hierarchy-structure-extra", Root},
		{"hierarchy-tree-tech-style-badge-card", Root},
		{"hierarchy", Items},
		{"list", Items},
		{"something-else", Items},
		{"", Items},
	}
	for _, tt := range tests {
		if got := DataFieldForTemplate(tt.template); got != tt.want {
			t.Errorf("DataFieldForTemplate(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestEditorHints(t *testing.T) {
	tests := []struct {
		name         string
		doc          *Document
		wantValue    bool
		wantChildren bool
	}{
		{name: "Chart", doc: &Document{Template: "chart-bar-plain-text", DataField: Values}, wantValue: true},
		{name: "Values field", doc: &Document{Template: "custom", DataField: Values}, wantValue: true},
		{name: "Compare", doc: &Document{Template: "compare-swot", DataField: Compares}, wantChildren: true},
		{name: "Hierarchy", doc: &Document{Template: "hierarchy-structure", DataField: Items}, wantChildren: true},
		{name: "Root field", doc: &Document{Template: "custom", DataField: Root}, wantChildren: true},
		{name: "List", doc: &Document{Template: "list-grid-badge-card", DataField: Lists}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShowsValue(tt.doc); got != tt.wantValue {
				t.Errorf("ShowsValue() = %v, want %v", got, tt.wantValue)
			}
			if got := ShowsChildren(tt.doc); got != tt.wantChildren {
				t.Errorf("ShowsChildren() = %v, want %v", got, tt.wantChildren)
			}
		})
	}
}

func TestTemplates(t *testing.T) {
	all := Templates()

	total := 0
	for _, g := range TemplateGroups {
		total += len(g.Templates)
	}
	if len(all) != total {
		t.Fatalf("Expected %d templates, got %d", total, len(all))
	}

	seen := map[string]bool{}
	for _, name := range all {
		if seen[name] {
			t.Errorf("Duplicated template %q", name)
		}
		seen[name] = true
	}

	// Every relation template in the catalog must be recognised as such
	for _, g := range TemplateGroups {
		if g.Label != "Relation" {
			continue
		}
		for _, name := range g.Templates {
			if !IsRelation(name) || DataFieldForTemplate(name) != Nodes {
				t.Errorf("Template %q is not handled as a relation", name)
			}
		}
	}
}
