// Package export turns results into plain text for the clipboard and into
// paginated PDF documents.
package export

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sant0-9/lexis/internal/generation"
)

var titleCase = cases.Title(language.English)

// Document is a result prepared for export. It holds either ranked
// categories or a composed text.
type Document struct {
	Title      string
	Query      string
	Subtitle   string
	Categories []generation.Category
	Text       string

	// Format applies to Text only.
	Format Formatting
}

// FromRanked builds a document from a ranked result. Empty categories are
// left out.
func FromRanked(title, query string, r generation.Ranked) Document {
	doc := Document{Title: title, Query: query}
	for _, c := range r.Categories() {
		if len(c.Items) > 0 {
			doc.Categories = append(doc.Categories, c)
		}
	}
	return doc
}

// FromComposition builds a document from generated prose laid out with f.
func FromComposition(c *generation.Composition, f Formatting) Document {
	title := c.Form
	if title == "" {
		title = generation.DefaultForm
	}
	tone := c.Style.Tone
	if tone == "" {
		tone = generation.DefaultTone
	}
	return Document{
		Title:    titleCase.String(title),
		Query:    c.Prompt,
		Subtitle: "Tone: " + tone,
		Text:     c.Text,
		Format:   f,
	}
}

// FormatScore renders a score as a percentage with one decimal.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

// FormatPlainText renders doc for the clipboard.
func FormatPlainText(doc Document) string {
	var b strings.Builder

	if doc.Text != "" {
		b.WriteString(doc.Title)
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(doc.Text))
		b.WriteString("\n")
		return b.String()
	}

	for i, c := range doc.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.Heading())
		b.WriteString("\n")
		for _, s := range c.Items {
			fmt.Fprintf(&b, "- \"%s\" (Score: %s)\n", s.Text, FormatScore(s.Score))
		}
	}
	return b.String()
}
