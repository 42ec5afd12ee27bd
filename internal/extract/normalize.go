// Package extract turns a model's raw textual reply into untyped flashcard
// candidates. Models wrap their JSON in markdown fences, prose and comments;
// the normalizer isolates a JSON span with cheap heuristics and the parser
// applies recovery strategies until one yields candidates.
package extract

import (
	"regexp"
	"strings"
)

var (
	leadingNoise  = regexp.MustCompile("(?i)^(```json\\s*|```\\s*|json:\\s*|risposta:\\s*)")
	trailingNoise = regexp.MustCompile("(?i)(```json\\s*|```\\s*)$")
	lineComments  = regexp.MustCompile(`//[^\n]*`)
	blockComments = regexp.MustCompile(`(?s)/\*.*?\*/`)
	controlChars  = regexp.MustCompile("[\x00-\x1f\x7f-\u009f]")
)

// Normalize strips wrapper noise from a raw model reply and returns the best
// JSON-array candidate it can isolate. It is a total function: when no
// bracketed span exists at all, it returns the literal "[]". This is a span
// heuristic, not a parser; whether the span is actually valid JSON is the
// parser's problem.
func Normalize(raw string) string {
	text := leadingNoise.ReplaceAllString(strings.TrimSpace(raw), "")
	text = trailingNoise.ReplaceAllString(text, "")

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && start < end {
		return scrub(text[start : end+1])
	}

	// No array found: fall back to a single object and synthesize an array.
	start = strings.Index(text, "{")
	end = strings.LastIndex(text, "}")
	if start != -1 && end != -1 && start < end {
		return "[" + scrub(text[start:end+1]) + "]"
	}

	return "[]"
}

// scrub removes comment syntax and control characters that commonly break
// JSON decoding of model output.
func scrub(span string) string {
	span = lineComments.ReplaceAllString(span, "")
	span = blockComments.ReplaceAllString(span, "")
	span = controlChars.ReplaceAllString(span, "")
	return strings.TrimSpace(span)
}
