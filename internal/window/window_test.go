package window

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fdemusso/FlashCardIA/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(page int, words int) domain.TextSegment {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = fmt.Sprintf("parola%d", i)
	}
	content := strings.Join(parts, " ")
	return domain.TextSegment{Content: content, Page: page, WordCount: words}
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Nil(t, Build(nil, 800))
	assert.Nil(t, Build([]domain.TextSegment{}, 800))
}

func TestBuild_SingleSegment(t *testing.T) {
	segments := []domain.TextSegment{segment(1, 100)}
	windows := Build(segments, 800)

	require.Len(t, windows, 1)
	assert.Equal(t, segments[0].Content, windows[0].Text)
	assert.Equal(t, 100, windows[0].WordCount)
}

func TestBuild_BoundaryAtBudget(t *testing.T) {
	// 5 segments of 200 words with an 800-word budget: the first window holds
	// segments 1-4 exactly at the boundary, the fifth starts a new window
	// because adding it would exceed the budget.
	segments := []domain.TextSegment{
		segment(1, 200), segment(2, 200), segment(3, 200), segment(4, 200), segment(5, 200),
	}
	windows := Build(segments, 800)

	require.Len(t, windows, 2)
	assert.Equal(t, 800, windows[0].WordCount)
	assert.Equal(t, 200, windows[1].WordCount)
	assert.Equal(t, segments[4].Content, windows[1].Text)

	expectedFirst := strings.Join([]string{
		segments[0].Content, segments[1].Content, segments[2].Content, segments[3].Content,
	}, Separator)
	assert.Equal(t, expectedFirst, windows[0].Text)
}

func TestBuild_OversizedSegmentIsNeverSplit(t *testing.T) {
	segments := []domain.TextSegment{
		segment(1, 100),
		segment(2, 1500), // alone exceeds the budget
		segment(3, 100),
	}
	windows := Build(segments, 800)

	require.Len(t, windows, 3)
	assert.Equal(t, 100, windows[0].WordCount)
	assert.Equal(t, 1500, windows[1].WordCount)
	assert.Equal(t, segments[1].Content, windows[1].Text)
	assert.Equal(t, 100, windows[2].WordCount)
}

func TestBuild_CoversAllContentInOrder(t *testing.T) {
	var segments []domain.TextSegment
	for i := 1; i <= 9; i++ {
		segments = append(segments, segment(i, 50*i))
	}
	windows := Build(segments, 300)

	var joined []string
	for _, w := range windows {
		assert.NotEmpty(t, strings.TrimSpace(w.Text))
		joined = append(joined, w.Text)
	}

	var original []string
	for _, s := range segments {
		original = append(original, s.Content)
	}
	// Concatenation of all windows, ignoring separators, reproduces every
	// segment in the original order.
	assert.Equal(t, strings.Join(original, Separator), strings.Join(joined, Separator))
}

func TestBuild_Deterministic(t *testing.T) {
	segments := []domain.TextSegment{segment(1, 120), segment(2, 340), segment(3, 560)}
	first := Build(segments, 400)
	second := Build(segments, 400)
	assert.Equal(t, first, second)
}
