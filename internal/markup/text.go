package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	entityRe     = regexp.MustCompile(`&[^;]+;`)
	braceRe      = regexp.MustCompile(`\{[^}]*\}`)
	msoPlaceRe   = regexp.MustCompile(`mso-data-placement:[^;]*;?`)
	msoStyleRe   = regexp.MustCompile(`mso-[^:]+:[^;]*;?`)
	langAttrRe   = regexp.MustCompile(`lang=[^;]*;?`)
	styleAttrRe  = regexp.MustCompile(`style="[^"]*"`)
	classAttrRe  = regexp.MustCompile(`class="[^"]*"`)
	tabsRe       = regexp.MustCompile(`\t+`)
	optMarkerRe  = regexp.MustCompile(`(?i)^\s*(?:\d+|[A-D])[).:]\s*`)
	sentenceRe   = regexp.MustCompile(`([.?!])\s+([A-Z(])`)
	semicolonRe  = regexp.MustCompile(`;\s+([A-Z(])`)
)

// superscript glyphs for the digits that actually occur in unit notation;
// ordinal suffixes are appended bare, everything else gets caret notation.
func superscript(value string) string {
	switch value {
	case "0":
		return "⁰"
	case "1":
		return "¹"
	case "2":
		return "²"
	case "3":
		return "³"
	}
	switch strings.ToLower(value) {
	case "st", "nd", "rd", "th":
		return value
	}
	return "^" + value
}

// collectText flattens a subtree into raw text, dropping images, mapping
// superscripts and turning <br> into newlines. It is the traversal half of
// ExtractText; no cleanup happens here. The input tree is never modified.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
			return
		case c.Type == html.CommentNode:
			return
		case IsElement(c, "img"):
			return
		case IsElement(c, "sup"):
			b.WriteString(superscript(strings.TrimSpace(Text(c))))
			return
		case IsElement(c, "br"):
			b.WriteString("\n")
			return
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

// autoWrapLongText inserts a newline after sentence-terminating punctuation
// (or a semicolon) followed by a capital letter or opening parenthesis, but
// only for single-line text of at least 160 characters. Known to split after
// abbreviations too; that behavior is pinned by tests and kept.
func autoWrapLongText(text string) string {
	if strings.Contains(text, "\n") {
		return text
	}
	if len(text) < 160 {
		return text
	}
	text = sentenceRe.ReplaceAllString(text, "$1\n$2")
	return semicolonRe.ReplaceAllString(text, ";\n$1")
}

// cleanLines trims every line and drops the empty ones.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// ExtractText produces the plain-text body of a question cell. The transform
// order matters: images and superscripts are handled during traversal, then
// office-suite artifacts are stripped, tabs become line breaks, lines are
// cleaned and finally long single-line text is auto-wrapped. Returns "" when
// nothing readable remains.
func ExtractText(n *html.Node) string {
	if n == nil {
		return ""
	}
	text := collectText(n)

	// Word/Excel paste residue: comments, stray tags, entities, style blocks.
	text = commentRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = entityRe.ReplaceAllString(text, " ")
	text = braceRe.ReplaceAllString(text, "")
	text = msoPlaceRe.ReplaceAllString(text, "")

	// IB/Railway sheets separate statements with tabs.
	text = tabsRe.ReplaceAllString(text, "\n")

	text = cleanLines(text)
	return autoWrapLongText(text)
}

// ExtractOptionText is ExtractText plus removal of inline style/class/lang
// fragments and a single leading option marker ("1.", "B)", "c:").
func ExtractOptionText(n *html.Node) string {
	if n == nil {
		return ""
	}
	text := collectText(n)

	text = tabsRe.ReplaceAllString(text, "\n")

	text = commentRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = entityRe.ReplaceAllString(text, " ")
	text = braceRe.ReplaceAllString(text, "")
	text = msoPlaceRe.ReplaceAllString(text, "")
	text = msoStyleRe.ReplaceAllString(text, "")
	text = langAttrRe.ReplaceAllString(text, "")
	text = styleAttrRe.ReplaceAllString(text, "")
	text = classAttrRe.ReplaceAllString(text, "")

	text = optMarkerRe.ReplaceAllString(text, "")

	text = cleanLines(text)
	return autoWrapLongText(text)
}
