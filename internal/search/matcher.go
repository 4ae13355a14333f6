package search

import "strings"

// TextQuery is a compiled free-text query.
type TextQuery struct {
	present bool
	text    string
	terms   []string
}

// CompileText normalizes raw once so it can be evaluated against many records.
func CompileText(raw string) TextQuery {
	if strings.TrimSpace(raw) == "" {
		return TextQuery{}
	}
	text := strings.TrimSpace(Normalize(strings.TrimSpace(raw)))
	return TextQuery{present: true, text: text, terms: strings.Fields(text)}
}

// Present reports whether a non-blank query was supplied.
func (tq TextQuery) Present() bool { return tq.present }

// Text returns the normalized whole query.
func (tq TextQuery) Text() string { return tq.text }

// Matches decides whether f satisfies the query. Blank queries match everything.
// Every term must hit some field (substring, or a word prefix in the names); failing
// that, the whole query as one substring of any field is accepted.
func (tq TextQuery) Matches(f *Fields) bool {
	if !tq.present {
		return true
	}
	if tq.allTermsMatch(f) {
		return true
	}
	return containsAny(tq.text, f.Name, f.DisplayName, f.Club, f.Nationality)
}

func (tq TextQuery) allTermsMatch(f *Fields) bool {
	for _, term := range tq.terms {
		if containsAny(term, f.Name, f.DisplayName, f.Club, f.Nationality) {
			continue
		}
		if startsAnyWord(f.nameWords, term) || startsAnyWord(f.displayWords, term) {
			continue
		}
		return false
	}
	return true
}

func containsAny(sub string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(field, sub) {
			return true
		}
	}
	return false
}

// Matches is the one-shot form of CompileText(query).Matches(&fields).
func Matches(fields Fields, query string) bool {
	return CompileText(query).Matches(&fields)
}
