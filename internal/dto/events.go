package dto

import "github.com/fdemusso/FlashCardIA/internal/domain"

// Stream event types emitted while a document is being processed.
const (
	EventProgress = "progress"
	EventComplete = "complete"
	EventError    = "error"
)

// StreamEvent is one NDJSON line of the upload response.
type StreamEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ProgressEvent reports one completed window.
type ProgressEvent struct {
	CurrentPart int `json:"current_part"`
	TotalParts  int `json:"total_parts"`
	Percentage  int `json:"percentage"`
}

// Statistics aggregates what was processed for one document.
type Statistics struct {
	PagesProcessed      int `json:"pages_processed"`
	TotalWords          int `json:"total_words"`
	FlashcardsGenerated int `json:"flashcards_generated"`
}

// CompleteData carries the final record list and statistics.
type CompleteData struct {
	Flashcards   []domain.Flashcard `json:"flashcards"`
	Statistics   Statistics         `json:"statistics"`
	GenerationID string             `json:"generation_id"`
}

// HealthResponse reports the application and model service status.
type HealthResponse struct {
	Status          string   `json:"status"`
	OllamaAvailable bool     `json:"ollama_available"`
	ModelAvailable  bool     `json:"model_available"`
	Models          []string `json:"models"`
	Error           string   `json:"error,omitempty"`
}
