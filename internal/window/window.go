// Package window groups ordered text segments into word-bounded windows,
// each small enough for a single model call.
package window

import (
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/domain"
)

// Separator joins segments inside a window so page boundaries stay visible
// to the model.
const Separator = "\n\n"

// Window is an ordered concatenation of consecutive segments. It is built
// here, consumed by one model call, then discarded.
type Window struct {
	Text      string
	WordCount int
}

// Build partitions segments into windows of at most budget words. A segment
// whose own word count exceeds the budget is never split: it becomes a
// singleton window so no content is lost. The result covers every input
// segment exactly once, in the original order, and is a pure function of
// the input.
func Build(segments []domain.TextSegment, budget int) []Window {
	if len(segments) == 0 {
		return nil
	}

	var windows []Window
	var current strings.Builder
	wordCount := 0

	for _, seg := range segments {
		if current.Len() > 0 && wordCount+seg.WordCount > budget {
			windows = append(windows, Window{Text: current.String(), WordCount: wordCount})
			current.Reset()
			wordCount = 0
		}
		if current.Len() > 0 {
			current.WriteString(Separator)
		}
		current.WriteString(seg.Content)
		wordCount += seg.WordCount
	}

	if strings.TrimSpace(current.String()) != "" {
		windows = append(windows, Window{Text: current.String(), WordCount: wordCount})
	}

	return windows
}
