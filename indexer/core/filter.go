package core

// Filter keeps the document keywords whose stem is (FilterInclude) or is not
// (FilterExclude) present in the reference list. Document order is preserved.
func Filter(document, reference []Keyword, mode FilterMode) []Keyword {
	stems := make(map[string]struct{}, len(reference))
	for _, kw := range reference {
		stems[kw.Stem] = struct{}{}
	}
	keep := mode != FilterExclude

	filtered := make([]Keyword, 0, len(document))
	for _, kw := range document {
		if _, ok := stems[kw.Stem]; ok == keep {
			filtered = append(filtered, kw)
		}
	}
	return filtered
}

// Expand flattens the terms of every keyword into a single list, keyword by keyword.
func Expand(keywords []Keyword) []string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		terms = append(terms, kw.Terms...)
	}
	return terms
}

func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case FilterInclude, "":
		return FilterInclude, nil
	case FilterExclude:
		return FilterExclude, nil
	default:
		return "", ErrBadArguments
	}
}
