// Package markup contains the shared utilities for walking vendor response
// sheets: node queries over the parsed tree, image URL resolution, bilingual
// sibling derivation and plain-text extraction that survives Word/Excel HTML
// artifacts.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// FindAll returns every descendant of n (not n itself) matching pred, in
// document order.
func FindAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			if pred(child) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(n)
	return out
}

// First returns the first descendant matching pred, or nil.
func First(n *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(c *html.Node) bool {
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			if pred(child) {
				found = child
				return true
			}
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(n)
	return found
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// ByTag returns all descendant elements with the given tag name.
func ByTag(n *html.Node, tag string) []*html.Node {
	return FindAll(n, func(c *html.Node) bool { return IsElement(c, tag) })
}

// FirstByTag returns the first descendant element with the tag name, or nil.
func FirstByTag(n *html.Node, tag string) *html.Node {
	return First(n, func(c *html.Node) bool { return IsElement(c, tag) })
}

// Attr returns the value of an attribute, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether the element's class attribute contains the given
// token.
func HasClass(n *html.Node, class string) bool {
	for _, tok := range strings.Fields(Attr(n, "class")) {
		if tok == class {
			return true
		}
	}
	return false
}

// Text concatenates every text node under n, like DOM textContent. No
// normalization is applied; see ExtractText for the cleaned-up variant.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			return
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
