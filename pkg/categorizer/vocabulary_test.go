package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess_DefaultVocabulary(t *testing.T) {
	stemmed := Preprocess(DefaultVocabulary())

	for _, category := range Categories {
		assert.NotEmpty(t, stemmed.Stems(category), "category %q should have stems", category)
	}
	assert.True(t, stemmed.Contains(CategoryTitle, "profit"), "stems are lowercase")
	assert.True(t, stemmed.Contains(CategoryTitle, "negoti"))
	assert.False(t, stemmed.Contains(CategoryTitle, "negotiation"), "raw words are never stored")
	assert.Equal(t, []string{"english", "hindi"}, stemmed.Stems(CategoryLanguage))
	assert.False(t, stemmed.Contains("genre", "video"))
}

func TestPreprocess_OnlyFixedCategories(t *testing.T) {
	stemmed := Preprocess(Vocabulary{
		CategoryLanguage: {"French"},
		"genre":          {"thriller"},
	})

	assert.Equal(t, []string{"french"}, stemmed.Stems(CategoryLanguage))
	assert.Empty(t, stemmed.Stems(CategoryTitle))
	assert.Empty(t, stemmed.Stems("genre"))
	assert.Len(t, stemmed.stems, len(Categories))
}

func TestStem(t *testing.T) {
	assert.Equal(t, Stem("negotiation"), Stem("Negotiating"))
	assert.Equal(t, Stem("opportunities"), Stem("opportunity"))
	assert.Equal(t, "video", Stem("Videos"))
}

func TestNewVocabulary(t *testing.T) {
	t.Run("no overrides", func(t *testing.T) {
		vocab, err := NewVocabulary(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultVocabulary(), vocab)
	})

	t.Run("override replaces words", func(t *testing.T) {
		vocab, err := NewVocabulary(map[string][]string{CategoryContentType: {"podcast", "ebook"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"podcast", "ebook"}, vocab[CategoryContentType])
		assert.Equal(t, DefaultVocabulary()[CategoryTitle], vocab[CategoryTitle])
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := NewVocabulary(map[string][]string{"genre": {"thriller"}})
		assert.ErrorContains(t, err, "unknown vocabulary category")
	})

	t.Run("empty words", func(t *testing.T) {
		_, err := NewVocabulary(map[string][]string{CategoryTitle: {"", "  "}})
		assert.ErrorContains(t, err, "has no words")
	})
}
