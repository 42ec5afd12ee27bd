package service

import (
	"context"
	"fmt"

	"github.com/fdemusso/FlashCardIA/internal/config"
	"github.com/fdemusso/FlashCardIA/internal/domain"
	"github.com/fdemusso/FlashCardIA/internal/dto"
	"github.com/fdemusso/FlashCardIA/internal/extract"
	"github.com/fdemusso/FlashCardIA/internal/logger"
	"github.com/fdemusso/FlashCardIA/internal/util"
	"github.com/fdemusso/FlashCardIA/internal/validation"
	"github.com/fdemusso/FlashCardIA/internal/window"

	"go.uber.org/zap"
)

// ProgressFunc is called once per completed window.
type ProgressFunc func(dto.ProgressEvent)

// GenerationService orchestrates the pipeline: segments are windowed, each
// window is sent to the model, and the reply is normalized, parsed and
// validated. Windows run strictly sequentially because the record cap is
// checked between windows.
type GenerationService interface {
	// CheckPreconditions rejects documents with no segments or too few words.
	// It must be called before Generate; both failures are fatal to the
	// request.
	CheckPreconditions(segments []domain.TextSegment) error
	// Generate runs the per-window loop and returns the accepted flashcards
	// with aggregate statistics. It fails only when zero records survive
	// across every window.
	Generate(ctx context.Context, segments []domain.TextSegment, onProgress ProgressFunc) (*dto.CompleteData, error)
}

type generationService struct {
	generator domain.FlashcardGenerator
	validator *validation.Validator
	cfg       config.GenerationConfig
}

// NewGenerationService creates a GenerationService.
func NewGenerationService(
	generator domain.FlashcardGenerator,
	validator *validation.Validator,
	cfg config.GenerationConfig,
) GenerationService {
	return &generationService{
		generator: generator,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *generationService) CheckPreconditions(segments []domain.TextSegment) error {
	if len(segments) == 0 {
		return domain.NewInsufficientTextError(
			"No text could be extracted from the document; it may be scanned images or damaged")
	}
	if total := domain.TotalWords(segments); total < s.cfg.MinWords {
		return domain.NewInsufficientTextError(fmt.Sprintf(
			"The document contains too little text to generate meaningful flashcards (%d words, minimum %d)",
			total, s.cfg.MinWords))
	}
	return nil
}

func (s *generationService) Generate(ctx context.Context, segments []domain.TextSegment, onProgress ProgressFunc) (*dto.CompleteData, error) {
	generationID := util.NewULID()
	log := logger.Get().With(zap.String("generation_id", generationID))

	windows := window.Build(segments, s.cfg.WordsPerWindow)
	log.Info("Document windowed",
		zap.Int("segments", len(segments)),
		zap.Int("windows", len(windows)),
		zap.Int("total_words", domain.TotalWords(segments)),
	)

	var flashcards []domain.Flashcard
	for i, win := range windows {
		if ctx.Err() != nil {
			log.Warn("Generation cancelled", zap.Int("window", i+1), zap.Error(ctx.Err()))
			break
		}

		flashcards = append(flashcards, s.processWindow(ctx, log, i, win)...)

		if onProgress != nil {
			onProgress(dto.ProgressEvent{
				CurrentPart: i + 1,
				TotalParts:  len(windows),
				Percentage:  (i + 1) * 100 / len(windows),
			})
		}

		// A single window may push the total past the cap; no truncation
		// back down is performed.
		if len(flashcards) >= s.cfg.MaxFlashcards {
			log.Info("Flashcard cap reached", zap.Int("count", len(flashcards)))
			break
		}
	}

	if len(flashcards) == 0 {
		return nil, domain.NewGenerationFailedError(
			"Unable to generate flashcards from the document content")
	}

	log.Info("Generation complete", zap.Int("flashcards", len(flashcards)))

	return &dto.CompleteData{
		Flashcards: flashcards,
		Statistics: dto.Statistics{
			PagesProcessed:      len(segments),
			TotalWords:          domain.TotalWords(segments),
			FlashcardsGenerated: len(flashcards),
		},
		GenerationID: generationID,
	}, nil
}

// processWindow runs one model call and coerces its reply into accepted
// flashcards. Every failure inside the window degrades to zero records for
// this window only.
func (s *generationService) processWindow(ctx context.Context, log *zap.Logger, index int, win window.Window) []domain.Flashcard {
	log.Info("Processing window", zap.Int("window", index+1), zap.Int("words", win.WordCount))

	raw, err := s.generator.Generate(ctx, win.Text)
	if err != nil {
		log.Warn("Model call failed for window", zap.Int("window", index+1), zap.Error(err))
		return nil
	}

	candidates := extract.Parse(extract.Normalize(raw))
	if len(candidates) == 0 {
		log.Warn("No candidates recovered from model reply",
			zap.Int("window", index+1),
			zap.Int("reply_length", len(raw)),
		)
		return nil
	}

	accepted := s.validator.ValidateAll(candidates)
	log.Info("Window validated",
		zap.Int("window", index+1),
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", len(accepted)),
	)
	return accepted
}
