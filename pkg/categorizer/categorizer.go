package categorizer

// Category names recognised by the extractor.
const (
	CategoryTitle       = "title"
	CategoryLanguage    = "language"
	CategoryContentType = "content type"
)

// Categories lists the fixed category set in scan order.
var Categories = []string{CategoryTitle, CategoryLanguage, CategoryContentType}

// Result maps a category to the lowercased query word that matched it.
// Categories without a match are absent.
type Result map[string]string

// Empty reports whether no category matched.
func (r Result) Empty() bool {
	return len(r) == 0
}

// QueryCategorizer extracts category keywords from a free-text query
type QueryCategorizer interface {
	Extract(query string) Result
}

// IsCategory reports whether name is one of the fixed categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
