package categorizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Vocabulary holds the raw representative words for each category.
type Vocabulary map[string][]string

// DefaultVocabulary returns the built-in category words.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		CategoryTitle:       {"Profit", "interview", "preparation", "negotiation", "selling", "convincing", "opportunities", "business"},
		CategoryLanguage:    {"english", "hindi"},
		CategoryContentType: {"video", "course", "article", "book"},
	}
}

// NewVocabulary builds a Vocabulary from configured overrides. Categories
// missing from overrides keep their default words.
func NewVocabulary(overrides map[string][]string) (Vocabulary, error) {
	vocab := DefaultVocabulary()
	for category, words := range overrides {
		if !IsCategory(category) {
			return nil, fmt.Errorf("unknown vocabulary category %q (expected one of %s)", category, strings.Join(Categories, ", "))
		}
		cleaned := make([]string, 0, len(words))
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				cleaned = append(cleaned, w)
			}
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("vocabulary category %q has no words", category)
		}
		vocab[category] = cleaned
	}
	return vocab, nil
}

// Stem reduces a word to its Snowball English stem. Stop words are stemmed too
// so that matching does not depend on the stop word list.
func Stem(word string) string {
	return english.Stem(word, true)
}

// StemmedVocabulary is the read-only stem set per category. Build it once with
// Preprocess and share it freely between goroutines.
type StemmedVocabulary struct {
	stems map[string]map[string]struct{}
}

// Preprocess stems every word of v into a per-category set. Every fixed
// category is present in the result, even when v has no words for it.
func Preprocess(v Vocabulary) StemmedVocabulary {
	stems := make(map[string]map[string]struct{}, len(Categories))
	for _, category := range Categories {
		set := make(map[string]struct{}, len(v[category]))
		for _, word := range v[category] {
			set[Stem(word)] = struct{}{}
		}
		stems[category] = set
	}
	return StemmedVocabulary{stems: stems}
}

// Contains reports whether stem belongs to category.
func (s StemmedVocabulary) Contains(category, stem string) bool {
	_, ok := s.stems[category][stem]
	return ok
}

// Stems returns the sorted stems of a category.
func (s StemmedVocabulary) Stems(category string) []string {
	out := make([]string, 0, len(s.stems[category]))
	for stem := range s.stems[category] {
		out = append(out, stem)
	}
	sort.Strings(out)
	return out
}
