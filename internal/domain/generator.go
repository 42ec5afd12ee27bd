package domain

import "context"

// ModelStatus describes the reachability of the generative model service
// and whether the configured model is installed.
type ModelStatus struct {
	Available      bool
	ModelAvailable bool
	Models         []string
	Err            string
}

// FlashcardGenerator is the port to the generative model. Generate sends one
// window of text and returns the model's raw textual reply; the caller is
// responsible for turning that unreliable text into structured records.
type FlashcardGenerator interface {
	Generate(ctx context.Context, windowText string) (string, error)
	Status(ctx context.Context) ModelStatus
}
