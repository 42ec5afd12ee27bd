package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/domain"
	"github.com/fdemusso/FlashCardIA/internal/dto"
	"github.com/fdemusso/FlashCardIA/internal/logger"
	"github.com/fdemusso/FlashCardIA/internal/pdf"
	"github.com/fdemusso/FlashCardIA/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FlashcardHandler handles the PDF upload and health endpoints.
type FlashcardHandler struct {
	extractor *pdf.Extractor
	service   service.GenerationService
	generator domain.FlashcardGenerator
}

// NewFlashcardHandler creates a new FlashcardHandler instance
func NewFlashcardHandler(
	extractor *pdf.Extractor,
	generationService service.GenerationService,
	generator domain.FlashcardGenerator,
) *FlashcardHandler {
	return &FlashcardHandler{
		extractor: extractor,
		service:   generationService,
		generator: generator,
	}
}

// UploadPDF handles POST /api/upload-pdf. It validates the upload, extracts
// text, verifies the model service, then streams NDJSON events: one progress
// line per completed window followed by a terminal complete or error line.
// Fatal conditions are all detected before the stream starts, so they map to
// regular HTTP errors.
func (h *FlashcardHandler) UploadPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("A PDF file is required in the 'file' form field")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return domain.NewInvalidFileError("The uploaded file must be a PDF", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInvalidFileError("Unable to open the uploaded file", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInvalidFileError("Unable to read the uploaded file", err)
	}

	logger.Get().Info("PDF upload received",
		zap.String("filename", fileHeader.Filename),
		zap.Int("size", len(content)),
	)

	segments, err := h.extractor.Extract(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return err
	}

	if err := h.service.CheckPreconditions(segments); err != nil {
		return err
	}

	status := h.generator.Status(c.UserContext())
	if !status.Available {
		return domain.NewLLMUnavailableError("The AI service is not reachable", nil)
	}
	if !status.ModelAvailable {
		return domain.NewLLMUnavailableError("The required AI model is not installed", nil)
	}

	// The request context is recycled by fasthttp once the handler returns,
	// before the stream writer runs.
	ctx := context.Background()

	c.Set(fiber.HeaderContentType, "application/x-ndjson")
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		enc := json.NewEncoder(w)

		result, err := h.service.Generate(ctx, segments, func(progress dto.ProgressEvent) {
			_ = enc.Encode(dto.StreamEvent{Type: dto.EventProgress, Data: progress})
			_ = w.Flush()
		})
		if err != nil {
			_ = enc.Encode(dto.StreamEvent{Type: dto.EventError, Data: err.Error()})
			_ = w.Flush()
			return
		}

		_ = enc.Encode(dto.StreamEvent{Type: dto.EventComplete, Data: result})
		_ = w.Flush()
	})

	return nil
}

// Health handles GET /health, reporting Ollama reachability and whether the
// configured model is installed.
func (h *FlashcardHandler) Health(c *fiber.Ctx) error {
	status := h.generator.Status(c.UserContext())

	overall := "healthy"
	if !status.Available {
		overall = "unhealthy"
	}

	return c.JSON(dto.HealthResponse{
		Status:          overall,
		OllamaAvailable: status.Available,
		ModelAvailable:  status.ModelAvailable,
		Models:          status.Models,
		Error:           status.Err,
	})
}
