// Package schema has models, constants and key codecs for all parts of auditgauge.
package schema

import "sort"

// LocalizedText maps a locale code to a rendered string. Catalog documents
// may provide a plain scalar (stored under the document's locale) or an
// explicit locale map.
type LocalizedText map[string]string

// Text resolves the string for the requested locale. Resolution order:
// exact locale, fallback locale, then the lexicographically first available
// locale so a single-locale catalog still renders deterministically.
func (lt LocalizedText) Text(locale, fallback string) string {
	if s, ok := lt[locale]; ok {
		return s
	}
	if s, ok := lt[fallback]; ok {
		return s
	}
	locales := make([]string, 0, len(lt))
	for l := range lt {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	if len(locales) > 0 {
		return lt[locales[0]]
	}
	return ""
}

// Merge copies entries from other into lt, overwriting existing locales.
func (lt LocalizedText) Merge(other LocalizedText) {
	for l, s := range other {
		lt[l] = s
	}
}

// Question is a single catalog entry, immutable once loaded.
// SubQuestions is populated only for KindPW.
type Question struct {
	SectionID    string          // Owning section identity
	ID           string          // Question identity within the section
	Kind         QuestionKind    // XO, PJ or PW
	Description  LocalizedText   // Localizable question text
	SubQuestions []LocalizedText // Ordered checklist labels (PW only)
}

// Section is an ordered group of questions corresponding to one audit domain.
type Section struct {
	ID        string        // Section identity
	Name      LocalizedText // Localizable display name
	Questions []Question    // Declared document order
}

// Question returns the question with the given ID, or nil.
func (s *Section) Question(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// Questionnaire is the full ordered catalog. It is loaded once per session
// and read-only afterwards, so concurrent reads need no synchronization.
type Questionnaire struct {
	Sections []Section // Declared document order
}

// Section returns the section with the given ID, or nil.
func (q *Questionnaire) Section(id string) *Section {
	for i := range q.Sections {
		if q.Sections[i].ID == id {
			return &q.Sections[i]
		}
	}
	return nil
}

// QuestionCount returns the total number of questions across all sections.
func (q *Questionnaire) QuestionCount() int {
	n := 0
	for i := range q.Sections {
		n += len(q.Sections[i].Questions)
	}
	return n
}
