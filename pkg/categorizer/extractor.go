package categorizer

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lowercases query and splits it into word tokens. Punctuation and
// whitespace only separate tokens.
func Tokenize(query string) []string {
	return wordPattern.FindAllString(strings.ToLower(query), -1)
}

// Extractor matches query words against a stemmed vocabulary.
type Extractor struct {
	vocab StemmedVocabulary
}

var _ QueryCategorizer = (*Extractor)(nil)

func NewExtractor(vocab StemmedVocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// Vocabulary returns the stemmed vocabulary the extractor matches against.
func (e *Extractor) Vocabulary() StemmedVocabulary {
	return e.vocab
}

// Extract returns the category keywords found in query. When several words
// match the same category, the last one in the query wins.
func (e *Extractor) Extract(query string) Result {
	log.Debugf("Extracting keywords from query: %q", query)

	result := Result{}
	for _, word := range Tokenize(query) {
		stem := Stem(word)
		for _, category := range Categories {
			if e.vocab.Contains(category, stem) {
				result[category] = word
			}
		}
	}

	log.WithField("keywords", map[string]string(result)).Debug("Extracted keywords")
	return result
}
