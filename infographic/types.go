// Package infographic parses and serializes the infographic DSL, the indentation
// based text format used to describe a slide: a template name, a data section with
// the items to show and an optional theme.
//
//	infographic list-row-simple-horizontal-arrow
//	data
//	  title T
//	  items
//	    - label A
//	      desc B
//	theme light
//	  palette #fff,#000
//
// Parsing is lenient. Only a missing or malformed header line is reported as an error,
// anything else that can not be understood is skipped.
package infographic

// DataField is the keyword introducing the primary collection of the data section.
type DataField string

const (
	Lists     DataField = "lists"
	Sequences DataField = "sequences"
	Compares  DataField = "compares"
	Items     DataField = "items"
	Values    DataField = "values"
	Nodes     DataField = "nodes"
	Root      DataField = "root"
)

// listFields are the keywords introducing a "- " item list.
var listFields = []DataField{Lists, Sequences, Compares, Items, Values, Nodes}

// listFieldFor returns the DataField for a collection keyword, if it is one.
func listFieldFor(keyword string) (DataField, bool) {
	for _, f := range listFields {
		if string(f) == keyword {
			return f, true
		}
	}
	return "", false
}

// String returns the keyword as written in the DSL.
func (f DataField) String() string {
	return string(f)
}

// Document is the structured form of a DSL text.
type Document struct {
	Template  string     `json:"template"`
	Title     string     `json:"title,omitempty"`
	Desc      string     `json:"desc,omitempty"`
	DataField DataField  `json:"dataField"`
	Items     []*Item    `json:"items"`
	Relations []Relation `json:"relations,omitempty"`
	Theme     *Theme     `json:"theme,omitempty"`
}

// Item is an entry of the primary collection. Empty strings mean the field is absent.
type Item struct {
	Label    string  `json:"label,omitempty"`
	Desc     string  `json:"desc,omitempty"`
	Value    string  `json:"value,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	Time     string  `json:"time,omitempty"`
	ID       string  `json:"id,omitempty"`
	Children []*Item `json:"children,omitempty"`
}

// Theme holds the values of the theme section, copied verbatim.
type Theme struct {
	Mode    string   `json:"mode,omitempty"`
	Palette []string `json:"palette,omitempty"`
	Stylize string   `json:"stylize,omitempty"`
}

// Relation is an edge line of a relation template. The line is never interpreted.
type Relation struct {
	Raw string `json:"raw"`
}
