package service

import (
	"testing"

	"bloghub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

func similarCandidates(n int) []models.Article {
	articles := make([]models.Article, n)
	for i := range articles {
		articles[i] = models.Article{ID: int64(i + 1)}
	}
	return articles
}

func TestPickSimilar_CapsAtLimit(t *testing.T) {
	picked := pickSimilar(similarCandidates(20))
	assert.Len(t, picked, similarLimit)
}

func TestPickSimilar_KeepsShortListWhole(t *testing.T) {
	picked := pickSimilar(similarCandidates(3))
	assert.Len(t, picked, 3)
}

func TestPickSimilar_EmptyList(t *testing.T) {
	picked := pickSimilar(nil)
	assert.Empty(t, picked)
}

func TestPickSimilar_ReturnsSubsetWithoutDuplicates(t *testing.T) {
	candidates := similarCandidates(20)
	valid := make(map[int64]bool, len(candidates))
	for _, a := range candidates {
		valid[a.ID] = true
	}

	picked := pickSimilar(similarCandidates(20))

	seen := make(map[int64]bool, len(picked))
	for _, a := range picked {
		assert.True(t, valid[a.ID])
		assert.False(t, seen[a.ID], "article %d picked twice", a.ID)
		seen[a.ID] = true
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapses", "Go 1.22: what's new?", "go-1-22-what-s-new"},
		{"leading and trailing separators", "  --Hello--  ", "hello"},
		{"unicode letters survive", "Привет мир", "привет-мир"},
		{"empty input", "", ""},
		{"only separators", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.input))
		})
	}
}

func TestRenderMarkdown_StripsScripts(t *testing.T) {
	out := renderMarkdown("# Title\n\n<script>alert(1)</script>\n\nbody text")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "body text")
	assert.NotContains(t, out, "<script>")
}

func TestSanitizeText_StripsAllMarkup(t *testing.T) {
	assert.Equal(t, "hello", sanitizeText("<b>hello</b>"))
	assert.Empty(t, sanitizeText("<script>alert(1)</script>"))
}
