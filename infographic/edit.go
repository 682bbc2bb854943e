package infographic

import "strings"

// The With* methods implement edits the way a form editor needs them: the receiver
// is never modified, a new Document is returned instead.

// Clone returns a deep copy of doc.
func (doc *Document) Clone() *Document {
	if doc == nil {
		return nil
	}

	c := *doc
	c.Items = cloneItems(doc.Items)
	if c.Items == nil {
		c.Items = []*Item{}
	}
	if doc.Relations != nil {
		c.Relations = append([]Relation(nil), doc.Relations...)
	}
	if doc.Theme != nil {
		t := *doc.Theme
		if doc.Theme.Palette != nil {
			t.Palette = append([]string(nil), doc.Theme.Palette...)
		}
		c.Theme = &t
	}
	return &c
}

// Clone returns a deep copy of item, children included.
func (item *Item) Clone() *Item {
	if item == nil {
		return nil
	}
	c := *item
	c.Children = cloneItems(item.Children)
	return &c
}

func cloneItems(items []*Item) []*Item {
	if items == nil {
		return nil
	}
	c := make([]*Item, len(items))
	for i, item := range items {
		c[i] = item.Clone()
	}
	return c
}

// WithTemplate changes the template and switches to the data field it expects.
// Items are kept as they are.
func (doc *Document) WithTemplate(template string) *Document {
	c := doc.Clone()
	if len(template) == 0 {
		return c
	}
	c.Template = template
	c.DataField = DataFieldForTemplate(template)
	return c
}

// WithItemAdded appends a copy of item to the primary collection.
func (doc *Document) WithItemAdded(item *Item) *Document {
	c := doc.Clone()
	if item == nil {
		item = &Item{}
	}
	c.Items = append(c.Items, item.Clone())
	return c
}

// WithItemRemoved removes the item at index i.
func (doc *Document) WithItemRemoved(i int) *Document {
	c := doc.Clone()
	if i < 0 || i >= len(c.Items) {
		return c
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return c
}

// WithItemReplaced replaces the item at index i with a copy of item.
func (doc *Document) WithItemReplaced(i int, item *Item) *Document {
	c := doc.Clone()
	if i < 0 || i >= len(c.Items) || item == nil {
		return c
	}
	c.Items[i] = item.Clone()
	return c
}

// WithItemMoved moves the item at index from to index to, shifting the items in between.
func (doc *Document) WithItemMoved(from int, to int) *Document {
	c := doc.Clone()
	n := len(c.Items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return c
	}

	moved := c.Items[from]
	if from < to {
		copy(c.Items[from:to], c.Items[from+1:to+1])
	} else {
		copy(c.Items[to+1:from+1], c.Items[to:from])
	}
	c.Items[to] = moved
	return c
}

// WithPalette sets the palette from a comma separated list, as typed in a text box.
// Empty entries are dropped and an empty list removes the palette.
func (doc *Document) WithPalette(csv string) *Document {
	c := doc.Clone()

	var palette []string
	for _, color := range strings.Split(csv, ",") {
		if color = strings.TrimSpace(color); len(color) > 0 {
			palette = append(palette, color)
		}
	}

	if c.Theme == nil {
		c.Theme = &Theme{}
	}
	c.Theme.Palette = palette
	return c
}

// WithThemeMode sets the theme mode. An empty mode removes it.
func (doc *Document) WithThemeMode(mode string) *Document {
	c := doc.Clone()
	if c.Theme == nil {
		c.Theme = &Theme{}
	}
	c.Theme.Mode = mode
	return c
}
