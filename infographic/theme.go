package infographic

import "strings"

const (
	paletteKeyword = "palette"
	stylizePrefix  = "stylize "
)

// parseTheme parses the theme section starting at lines[at], the "theme" line itself.
// The section ends at the next zero-indent line.
func (p *Parser) parseTheme(lines []Line, at int) *Theme {
	theme := &Theme{}

	// "theme", "theme light" or "theme dark"
	if words := strings.Fields(lines[at].Content); len(words) > 1 {
		theme.Mode = words[1]
	}

	i := at + 1
	for i < len(lines) {
		l := lines[i]
		if l.Blank() {
			i++
			continue
		}
		if l.Indent == 0 {
			break
		}
		if l.Indent != sectionIndent {
			i++
			continue
		}

		switch {
		case strings.HasPrefix(l.Content, paletteKeyword):
			inline := strings.TrimSpace(strings.TrimPrefix(l.Content, paletteKeyword))
			if len(inline) > 0 {
				theme.Palette = splitPalette(inline)
				i++
				continue
			}
			theme.Palette, i = parsePaletteList(lines, i+1)

		case strings.HasPrefix(l.Content, stylizePrefix):
			theme.Stylize = strings.TrimSpace(strings.TrimPrefix(l.Content, stylizePrefix))
			i++

		default:
			p.log.Debugw("unknown theme keyword", "line", l.Number, "content", l.Content)
			i++
		}
	}

	return theme
}

// splitPalette interprets an inline palette value. Values with a comma or starting
// with '#' are color lists, anything else is the name of a palette.
func splitPalette(inline string) []string {
	if !strings.Contains(inline, ",") && !strings.HasPrefix(inline, "#") {
		return []string{inline}
	}

	colors := strings.Split(inline, ",")
	for i, c := range colors {
		colors[i] = strings.TrimSpace(c)
	}
	return colors
}

// parsePaletteList collects the "- <color>" lines of a multi-line palette.
// The list ends at a blank line or a line indented less than collectionIndent.
func parsePaletteList(lines []Line, start int) ([]string, int) {
	var colors []string

	i := start
	for ; i < len(lines); i++ {
		l := lines[i]
		if l.Blank() || l.Indent < collectionIndent {
			break
		}
		if strings.HasPrefix(l.Content, itemPrefix) {
			colors = append(colors, strings.TrimSpace(strings.TrimPrefix(l.Content, itemPrefix)))
		}
	}

	return colors, i
}
