// Package validation repairs and validates flashcard candidates produced by
// the extraction layer. Candidates are processed independently: a rejected
// candidate is logged and dropped without affecting its siblings.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/domain"
	"github.com/fdemusso/FlashCardIA/internal/extract"

	"go.uber.org/zap"
)

// Candidate field names on the wire.
const (
	fieldQuestion      = "domanda"
	fieldAnswer        = "risposta"
	fieldKind          = "tipo"
	fieldScore         = "punteggio"
	fieldOptions       = "opzioni"
	fieldJustification = "giustificazione"
)

// missingJustification fills the justification of a closed question when the
// model omitted it; never a reason to reject.
const missingJustification = "Giustificazione non disponibile"

// Rules are the externally supplied validation thresholds.
type Rules struct {
	DefaultScore      int
	MinQuestionLength int
	MinAnswerLength   int
	OptionCount       int
}

// Validator turns candidates into accepted flashcards.
type Validator struct {
	rules Rules
	log   *zap.Logger
}

// New creates a Validator with the given rules.
func New(rules Rules, log *zap.Logger) *Validator {
	return &Validator{rules: rules, log: log}
}

// ValidateAll validates candidates in order and returns the accepted
// flashcards, preserving input order. Rejections are logged and silent to
// the caller.
func (v *Validator) ValidateAll(candidates []extract.Candidate) []domain.Flashcard {
	var accepted []domain.Flashcard
	for i, candidate := range candidates {
		card, err := v.validate(candidate)
		if err != nil {
			v.log.Warn("Flashcard candidate rejected",
				zap.Int("index", i),
				zap.String("reason", err.Error()),
			)
			continue
		}
		accepted = append(accepted, card)
	}
	return accepted
}

// validate runs the per-candidate procedure: required fields, kind check,
// score normalization, kind-specific repair, text cleanup and minimum
// lengths. It returns the reason a candidate was dropped as an error.
func (v *Validator) validate(c extract.Candidate) (domain.Flashcard, error) {
	var zero domain.Flashcard

	for _, field := range []string{fieldQuestion, fieldAnswer, fieldKind} {
		if _, present := c[field]; !present {
			return zero, fmt.Errorf("missing required field %q", field)
		}
	}

	kindText, _ := c[fieldKind].(string)
	kind := domain.Kind(kindText)
	if !kind.IsValid() {
		return zero, fmt.Errorf("unsupported kind %q", kindText)
	}

	card := domain.Flashcard{
		Question: asText(c[fieldQuestion]),
		Kind:     kind,
		Score:    v.normalizeScore(c[fieldScore]),
	}

	var err error
	switch kind {
	case domain.KindMultipleChoice:
		err = v.buildMultipleChoice(&card, c)
	case domain.KindTrueFalse:
		err = v.buildTrueFalse(&card, c)
	case domain.KindOpen:
		// Open questions carry neither options nor justification, whatever
		// the model supplied.
		card.Answer = asText(c[fieldAnswer])
	}
	if err != nil {
		return zero, err
	}

	card.Question = strings.TrimSpace(card.Question)
	card.Answer = strings.TrimSpace(card.Answer)
	card.Justification = strings.TrimSpace(card.Justification)

	if len(card.Question) < v.rules.MinQuestionLength {
		return zero, fmt.Errorf("question shorter than %d characters", v.rules.MinQuestionLength)
	}
	if len(card.Answer) < v.rules.MinAnswerLength {
		return zero, fmt.Errorf("answer shorter than %d characters", v.rules.MinAnswerLength)
	}

	return card, nil
}

// normalizeScore coerces the score into [1,5], falling back to the default
// when the value is absent, not an integer, or out of range. Never rejects.
func (v *Validator) normalizeScore(value any) int {
	number, isNumber := value.(float64)
	if !isNumber || number != math.Trunc(number) {
		return v.rules.DefaultScore
	}
	score := int(number)
	if score < 1 || score > 5 {
		return v.rules.DefaultScore
	}
	return score
}

// buildMultipleChoice normalizes the option list to exactly OptionCount
// entries and resolves the answer to the literal text of one option. A
// numeric answer is a zero-based index into the normalized options; this is
// the canonical wire contract the prompt mandates. A textual answer is
// tolerated as a repair path and must match one option exactly.
func (v *Validator) buildMultipleChoice(card *domain.Flashcard, c extract.Candidate) error {
	rawOptions, isList := c[fieldOptions].([]any)
	if !isList || len(rawOptions) < 2 {
		return fmt.Errorf("multiple choice without a valid option list")
	}

	options := make([]string, 0, v.rules.OptionCount)
	for _, option := range rawOptions {
		options = append(options, asText(option))
	}
	for len(options) < v.rules.OptionCount {
		options = append(options, fmt.Sprintf("Opzione %d", len(options)+1))
	}
	if len(options) > v.rules.OptionCount {
		options = options[:v.rules.OptionCount]
	}
	card.Options = options

	if number, isNumber := c[fieldAnswer].(float64); isNumber {
		index := int(number)
		if index < 0 || index >= len(options) {
			return fmt.Errorf("answer index %d out of range", index)
		}
		card.Answer = options[index]
	} else {
		answer := asText(c[fieldAnswer])
		if !contains(options, answer) {
			return fmt.Errorf("answer %q does not match any option", answer)
		}
		card.Answer = answer
	}

	card.Justification = justificationOrPlaceholder(c)
	return nil
}

// buildTrueFalse accepts only the two canonical boolean tokens, compared
// case-insensitively, and canonicalizes the answer to lowercase.
func (v *Validator) buildTrueFalse(card *domain.Flashcard, c extract.Candidate) error {
	answer := strings.ToLower(strings.TrimSpace(asText(c[fieldAnswer])))
	if answer != domain.AnswerTrue && answer != domain.AnswerFalse {
		return fmt.Errorf("true/false answer %q is neither %q nor %q",
			answer, domain.AnswerTrue, domain.AnswerFalse)
	}
	card.Answer = answer
	card.Justification = justificationOrPlaceholder(c)
	return nil
}

func justificationOrPlaceholder(c extract.Candidate) string {
	justification := strings.TrimSpace(asText(c[fieldJustification]))
	if justification == "" {
		return missingJustification
	}
	return justification
}

// asText defensively coerces any candidate value to text.
func asText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func contains(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}
