package services

import (
	"strings"
	"unicode"

	"ayursutra-server/internal/models"
)

// SuggestFunc ranks doctors by relevance to a patient's medical history.
// Implementations must not modify their arguments.
type SuggestFunc func(doctors []models.Doctor, history models.MedicalHistory) []models.Doctor

// minNoteTermLen drops short filler words from free-text notes.
const minNoteTermLen = 4

var noteStopWords = map[string]struct{}{
	"about": {}, "after": {}, "been": {}, "from": {}, "have": {},
	"since": {}, "that": {}, "this": {}, "with": {}, "when": {},
}

// KeywordSuggest suggests doctors whose treatments or specialization share a
// term with the recorded conditions or notes. Collection order is preserved.
func KeywordSuggest(doctors []models.Doctor, history models.MedicalHistory) []models.Doctor {
	terms := historyTerms(history)
	if len(terms) == 0 {
		return nil
	}
	notes := strings.ToLower(history.Notes)

	var out []models.Doctor
	for _, d := range doctors {
		if doctorMatches(d, terms, notes) {
			out = append(out, d)
		}
	}
	return out
}

func doctorMatches(d models.Doctor, terms []string, notes string) bool {
	haystacks := make([]string, 0, len(d.Treatments)+1)
	haystacks = append(haystacks, strings.ToLower(d.Specialization))
	for _, t := range d.Treatments {
		lt := strings.ToLower(t)
		// A treatment named outright in the notes is always relevant.
		if notes != "" && strings.Contains(notes, lt) {
			return true
		}
		haystacks = append(haystacks, lt)
	}
	for _, term := range terms {
		for _, h := range haystacks {
			if strings.Contains(h, term) {
				return true
			}
		}
	}
	return false
}

func historyTerms(h models.MedicalHistory) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		terms = append(terms, s)
	}
	for _, c := range h.Conditions {
		add(c)
	}
	words := strings.FieldsFunc(h.Notes, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		if len(w) < minNoteTermLen {
			continue
		}
		if _, stop := noteStopWords[strings.ToLower(w)]; stop {
			continue
		}
		add(w)
	}
	return terms
}
