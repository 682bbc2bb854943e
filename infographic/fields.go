package infographic

// itemFields lists the item fields in serialization priority order.
// The first populated field goes on the "- " line of an item.
var itemFields = []struct {
	key string
	ref func(*Item) *string
}{
	{"id", func(it *Item) *string { return &it.ID }},
	{"label", func(it *Item) *string { return &it.Label }},
	{"time", func(it *Item) *string { return &it.Time }},
	{"desc", func(it *Item) *string { return &it.Desc }},
	{"value", func(it *Item) *string { return &it.Value }},
	{"icon", func(it *Item) *string { return &it.Icon }},
}

// fieldRef returns a pointer to the field of item named key, or nil for unknown keys.
func fieldRef(item *Item, key string) *string {
	for _, f := range itemFields {
		if f.key == key {
			return f.ref(item)
		}
	}
	return nil
}

// populatedFields returns the "key value" pairs of the non-empty fields of item, in priority order.
func populatedFields(item *Item) []string {
	var fields []string
	for _, f := range itemFields {
		if v := *f.ref(item); len(v) > 0 {
			fields = append(fields, f.key+blank+v)
		}
	}
	return fields
}
