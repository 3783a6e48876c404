package service

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	htmlPolicy = bluemonday.UGCPolicy()
	// comments carry no markup at all
	textPolicy = bluemonday.StrictPolicy()
)

func init() {
	htmlPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	htmlPolicy.RequireNoReferrerOnLinks(true)
}

// renderMarkdown converts markdown to sanitized HTML.
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		// Fallback: serve the raw text, still sanitized
		return textPolicy.Sanitize(source)
	}
	return htmlPolicy.Sanitize(buf.String())
}

// sanitizeText strips all markup from user-supplied plain text.
func sanitizeText(source string) string {
	return textPolicy.Sanitize(source)
}
