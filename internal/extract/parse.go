package extract

import (
	"encoding/json"
	"regexp"
)

// Candidate is an unvalidated field mapping for a prospective flashcard.
// Fields may be missing or of the wrong type; the validator sorts that out.
type Candidate map[string]any

// minimalArray matches the shortest bracketed span, used to recover a valid
// prefix when the normalizer's greedy first-to-last bracket search admitted
// trailing garbage after a truncated model reply.
var minimalArray = regexp.MustCompile(`(?s)\[.*?\]`)

// strategy attempts to decode candidates from normalized text. ok reports
// whether the strategy concluded (successfully decoded something, even an
// unusable shape); a false return hands over to the next strategy.
type strategy func(normalized string) (candidates []Candidate, ok bool)

var strategies = []strategy{parseStrict, parseMinimalSpan}

// Parse decodes normalized text into candidates, trying each recovery
// strategy in order. It never fails: unrecoverable input yields nil.
func Parse(normalized string) []Candidate {
	for _, s := range strategies {
		if candidates, ok := s(normalized); ok {
			return candidates
		}
	}
	return nil
}

func parseStrict(normalized string) ([]Candidate, bool) {
	return decode(normalized)
}

func parseMinimalSpan(normalized string) ([]Candidate, bool) {
	span := minimalArray.FindString(normalized)
	if span == "" {
		return nil, true
	}
	if candidates, ok := decode(span); ok {
		return candidates, true
	}
	return nil, true
}

// decode unmarshals text and coerces the result: an array is used as-is, a
// single object becomes a one-element list, and any other valid JSON shape
// yields no candidates. Array elements that are not objects are dropped.
func decode(text string) ([]Candidate, bool) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, false
	}

	switch v := value.(type) {
	case []any:
		candidates := make([]Candidate, 0, len(v))
		for _, element := range v {
			if object, isObject := element.(map[string]any); isObject {
				candidates = append(candidates, Candidate(object))
			}
		}
		return candidates, true
	case map[string]any:
		return []Candidate{Candidate(v)}, true
	default:
		return nil, true
	}
}
