package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultExtractor() *Extractor {
	return NewExtractor(Preprocess(DefaultVocabulary()))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"video", "in", "hindi"}, Tokenize("Video, in HINDI!"))
	assert.Equal(t, []string{"snake_case", "42", "x"}, Tokenize("snake_case--42 x"))
	assert.Equal(t, []string{"café", "日本語"}, Tokenize("Café 日本語."))
	assert.Empty(t, Tokenize("  ...,;!? "))
	assert.Empty(t, Tokenize(""))
}

func TestExtractor_NoMatch(t *testing.T) {
	e := newDefaultExtractor()

	for _, q := range []string{"", "   ", "hello world", "!!!", "quantum chromodynamics"} {
		result := e.Extract(q)
		assert.True(t, result.Empty(), "query %q should extract nothing, got %v", q, result)
		assert.NotNil(t, result)
	}
}

func TestExtractor_SingleMatchPerCategory(t *testing.T) {
	e := newDefaultExtractor()

	tests := []struct {
		query    string
		category string
		word     string
	}{
		{"show me a book please", CategoryContentType, "book"},
		{"anything in english", CategoryLanguage, "english"},
		{"interview tips", CategoryTitle, "interview"},
		{"PROFIT margins", CategoryTitle, "profit"},
		{"Business?", CategoryTitle, "business"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result := e.Extract(tt.query)
			assert.Equal(t, Result{tt.category: tt.word}, result)
		})
	}
}

func TestExtractor_DifferentCategories(t *testing.T) {
	e := newDefaultExtractor()

	result := e.Extract("video in hindi")
	assert.Equal(t, Result{CategoryContentType: "video", CategoryLanguage: "hindi"}, result)
}

func TestExtractor_LastMatchWins(t *testing.T) {
	e := newDefaultExtractor()

	assert.Equal(t, Result{CategoryContentType: "article"}, e.Extract("video article"))
	assert.Equal(t, Result{CategoryContentType: "video"}, e.Extract("article video"))
	assert.Equal(t, Result{
		CategoryTitle:       "selling",
		CategoryLanguage:    "english",
		CategoryContentType: "course",
	}, e.Extract("Negotiation book in hindi, selling course in english"))
}

func TestExtractor_StemAndCaseInsensitive(t *testing.T) {
	e := newDefaultExtractor()

	result := e.Extract("Negotiating")
	require.Contains(t, result, CategoryTitle)
	assert.Equal(t, "negotiating", result[CategoryTitle], "result keeps the lowercased raw word, not the stem")

	assert.Equal(t, Result{CategoryContentType: "videos"}, e.Extract("VIDEOS"))
	assert.Equal(t, Result{CategoryTitle: "opportunity"}, e.Extract("opportunity"))
}

func TestExtractor_CustomVocabulary(t *testing.T) {
	vocab, err := NewVocabulary(map[string][]string{CategoryLanguage: {"tamil", " "}})
	require.NoError(t, err)

	e := NewExtractor(Preprocess(vocab))
	assert.Equal(t, Result{CategoryLanguage: "tamil"}, e.Extract("tamil hindi"))
	assert.Equal(t, Result{CategoryContentType: "book"}, e.Extract("book"), "untouched categories keep defaults")
}
