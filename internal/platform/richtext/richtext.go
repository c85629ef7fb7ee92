// Package richtext derives plain-text facts from the CKEditor HTML the
// backend stores for blogs and products.
package richtext

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	// WordsPerMinute is the reading speed behind ReadingTime.
	WordsPerMinute = 200

	// DescriptionLength bounds SEO descriptions derived from body text.
	DescriptionLength = 160

	ellipsis = "…"
)

// skipped elements contribute no text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
}

// blocks break words apart even when the markup has no whitespace.
var blocks = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "td": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "section": true, "article": true, "figcaption": true,
}

// Text returns the visible text of an HTML fragment with whitespace runs
// collapsed to single spaces. Malformed markup is parsed leniently.
func Text(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}

	return NodeText(doc)
}

// NodeText is Text for an already parsed node.
func NodeText(n *html.Node) string {
	var sb strings.Builder
	collect(n, &sb)

	return strings.Join(strings.Fields(sb.String()), " ")
}

func collect(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipped[n.Data] {
			return
		}
		if blocks[n.Data] {
			sb.WriteByte(' ')
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, sb)
	}

	if n.Type == html.ElementNode && blocks[n.Data] {
		sb.WriteByte(' ')
	}
}

// WordCount counts whitespace-separated words of the visible text.
func WordCount(fragment string) int {
	return len(strings.Fields(Text(fragment)))
}

// ReadingTime returns minutes to read at WordsPerMinute, at least 1.
func ReadingTime(fragment string) int {
	return readingTime(WordCount(fragment))
}

func readingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}

	return minutes
}

// Excerpt returns at most maxRunes runes of visible text, cut at a word
// boundary and suffixed with an ellipsis when shortened.
func Excerpt(fragment string, maxRunes int) string {
	return truncate(Text(fragment), maxRunes)
}

// Description is the SEO description fallback for a page without metadata.
func Description(fragment string) string {
	return truncate(Text(fragment), DescriptionLength)
}

func truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	// One rune is kept for the ellipsis.
	runes := []rune(text)
	cut := string(runes[:maxRunes-1])

	// Back up to the last space unless that discards the whole excerpt.
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,.;:-") + ellipsis
}
