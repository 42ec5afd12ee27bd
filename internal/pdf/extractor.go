// Package pdf extracts cleaned text segments from PDF documents, one segment
// per page with usable content.
package pdf

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/config"
	"github.com/fdemusso/FlashCardIA/internal/domain"

	lpdf "github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

var (
	controlRunes = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\u009f]")
	pageNumbers  = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// Extractor reads PDF pages and produces text segments. Pages that fail to
// parse or carry too little content are skipped, never fatal.
type Extractor struct {
	cfg config.PDFConfig
	log *zap.Logger
}

// NewExtractor creates an Extractor with the given thresholds.
func NewExtractor(cfg config.PDFConfig, log *zap.Logger) *Extractor {
	return &Extractor{cfg: cfg, log: log}
}

// Extract returns one segment per page with enough cleaned text. It fails
// only when the document itself cannot be opened as a PDF. The underlying
// parser panics on some malformed documents, so the whole pass is recovered
// into an error.
func (e *Extractor) Extract(r io.ReaderAt, size int64) (segments []domain.TextSegment, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			segments = nil
			err = domain.NewInvalidFileError("Unable to read the PDF document", fmt.Errorf("%v", rec))
		}
	}()

	reader, err := lpdf.NewReader(r, size)
	if err != nil {
		return nil, domain.NewInvalidFileError("Unable to read the PDF document", err)
	}

	e.log.Info("PDF loaded", zap.Int("pages", reader.NumPage()))

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		raw, err := extractPageText(page)
		if err != nil {
			e.log.Warn("Failed to extract page text", zap.Int("page", pageNum), zap.Error(err))
			continue
		}
		if len(strings.TrimSpace(raw)) < e.cfg.MinPageContent {
			e.log.Warn("Page has little or no text", zap.Int("page", pageNum))
			continue
		}

		cleaned := CleanText(raw)
		if len(cleaned) < e.cfg.MinCleanedLength {
			e.log.Warn("Page text insufficient after cleaning", zap.Int("page", pageNum))
			continue
		}

		wordCount := len(strings.Fields(cleaned))
		e.log.Debug("Page extracted", zap.Int("page", pageNum), zap.Int("words", wordCount))

		segments = append(segments, domain.TextSegment{
			Content:   cleaned,
			Page:      pageNum,
			WordCount: wordCount,
		})
	}

	return segments, nil
}

// extractPageText recovers from panics inside the PDF parser, which are
// common with malformed page content streams.
func extractPageText(page lpdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewExtractionFailedError(nil)
		}
	}()
	return page.GetPlainText(nil)
}

// CleanText normalizes raw page text for the model: control characters are
// dropped, isolated page numbers and short artifact lines removed, and
// whitespace collapsed to single spaces.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = controlRunes.ReplaceAllString(text, " ")
	text = pageNumbers.ReplaceAllString(text, "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 {
			lines = append(lines, line)
		}
	}
	text = strings.Join(lines, " ")

	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}
