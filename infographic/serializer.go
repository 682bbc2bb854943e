package infographic

import "strings"

// lineWriter accumulates the lines of a DSL text.
type lineWriter struct {
	lines []string
}

func (w *lineWriter) line(indent int, content ...string) {
	w.lines = append(w.lines, strings.Repeat(blank, indent)+strings.Join(content, ""))
}

func (w *lineWriter) String() string {
	return strings.Join(w.lines, "\n")
}

// Serialize writes doc as DSL text, without a trailing newline.
//
// Item fields are written in a fixed priority order (id, label, time, desc, value, icon),
// not in the order they were read. Palettes are always written inline. Parsing the
// result gives back a Document equal to doc when doc itself came from Parse, unless a
// palette entry holds a comma.
func Serialize(doc *Document) string {
	w := &lineWriter{}

	w.line(0, headerKeyword, blank, doc.Template)
	w.line(0, dataKeyword)

	if len(doc.Title) > 0 {
		w.line(sectionIndent, titlePrefix, doc.Title)
	}
	if len(doc.Desc) > 0 {
		w.line(sectionIndent, descPrefix, doc.Desc)
	}

	field := doc.DataField
	if len(field) == 0 {
		field = Items
	}

	if field == Root && len(doc.Items) > 0 {
		w.line(sectionIndent, rootKeyword)
		writeRoot(w, doc.Items[0], collectionIndent)
	} else {
		w.line(sectionIndent, string(field))
		for _, item := range doc.Items {
			writeItem(w, item, collectionIndent)
		}
	}

	if IsRelation(doc.Template) && len(doc.Relations) > 0 {
		w.line(sectionIndent, relationsKeyword)
		for _, rel := range doc.Relations {
			w.line(collectionIndent, rel.Raw)
		}
	}

	if doc.Theme != nil {
		writeTheme(w, doc.Theme)
	}

	return w.String()
}

// writeItem writes a "- " item at indent, its other fields and its children.
func writeItem(w *lineWriter, item *Item, indent int) {
	fields := populatedFields(item)

	// An item always needs a marker line, even without fields
	if len(fields) == 0 {
		w.line(indent, itemPrefix, "label ")
	} else {
		w.line(indent, itemPrefix, fields[0])
		for _, f := range fields[1:] {
			w.line(indent+2, f)
		}
	}

	if len(item.Children) > 0 {
		w.line(indent+2, childrenKeyword)
		for _, child := range item.Children {
			writeItem(w, child, indent+4)
		}
	}
}

// writeRoot writes the fields of the root item at indent and its children list below.
func writeRoot(w *lineWriter, item *Item, indent int) {
	for _, f := range populatedFields(item) {
		w.line(indent, f)
	}

	if len(item.Children) > 0 {
		w.line(indent, childrenKeyword)
		for _, child := range item.Children {
			writeItem(w, child, indent+2)
		}
	}
}

func writeTheme(w *lineWriter, theme *Theme) {
	if len(theme.Mode) > 0 {
		w.line(0, themeKeyword, blank, theme.Mode)
	} else {
		w.line(0, themeKeyword)
	}

	switch {
	case len(theme.Palette) == 1 && !strings.HasPrefix(theme.Palette[0], "#"):
		w.line(sectionIndent, paletteKeyword, blank, theme.Palette[0])
	case len(theme.Palette) > 0:
		w.line(sectionIndent, paletteKeyword, blank, strings.Join(theme.Palette, ","))
	}

	if len(theme.Stylize) > 0 {
		w.line(sectionIndent, stylizePrefix, theme.Stylize)
	}
}
