package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors are elements rendered as their own line so that
// headings and list items keep the line structure the section locator
// depends on.
var blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, div, td, br"

// ExtractHTMLText converts an HTML résumé export to plain text, one
// block element per line, with script/style content removed.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLParseError{Cause: err}
	}

	doc.Find("script, style, noscript, head").Remove()

	var sb strings.Builder
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish blocks: skip containers whose children are
		// themselves block elements, otherwise text duplicates.
		if s.ChildrenFiltered(blockSelectors).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fallback: flat text of the whole body
		text = doc.Find("body").Text()
	}

	return text, nil
}
