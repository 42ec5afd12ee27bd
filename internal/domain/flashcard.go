package domain

// Kind identifies the flashcard category. The values are the wire tokens
// used in the generation prompt and in API responses.
type Kind string

const (
	KindOpen           Kind = "aperta"
	KindTrueFalse      Kind = "vero_falso"
	KindMultipleChoice Kind = "multipla"
)

// IsValid reports whether k is one of the supported flashcard kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindOpen, KindTrueFalse, KindMultipleChoice:
		return true
	}
	return false
}

// Canonical answer tokens for true/false flashcards.
const (
	AnswerTrue  = "vero"
	AnswerFalse = "falso"
)

// Flashcard is a validated quiz record. It is created only by the validator
// and never mutated after acceptance.
//
// Options is set exactly when Kind is KindMultipleChoice, in which case Answer
// always equals one of its entries. Justification is set exactly when Kind is
// KindTrueFalse or KindMultipleChoice.
type Flashcard struct {
	Question      string   `json:"domanda"`
	Answer        string   `json:"risposta"`
	Kind          Kind     `json:"tipo"`
	Score         int      `json:"punteggio"`
	Options       []string `json:"opzioni,omitempty"`
	Justification string   `json:"giustificazione,omitempty"`
}
