package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_StrictArray(t *testing.T) {
	candidates := Parse(`[{"domanda": "Q1"}, {"domanda": "Q2"}]`)

	require.Len(t, candidates, 2)
	assert.Equal(t, "Q1", candidates[0]["domanda"])
	assert.Equal(t, "Q2", candidates[1]["domanda"])
}

func TestParse_SingleObjectWrapped(t *testing.T) {
	candidates := Parse(`{"domanda": "Q"}`)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Q", candidates[0]["domanda"])
}

func TestParse_OtherShapesYieldNothing(t *testing.T) {
	assert.Empty(t, Parse(`"solo una stringa"`))
	assert.Empty(t, Parse(`42`))
	assert.Empty(t, Parse(`true`))
}

func TestParse_NonObjectElementsDropped(t *testing.T) {
	candidates := Parse(`[{"domanda": "Q"}, "rumore", 7]`)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Q", candidates[0]["domanda"])
}

func TestParse_RecoverFromTrailingGarbage(t *testing.T) {
	// The normalizer's first-to-last bracket search can admit trailing
	// garbage after a truncated reply; the non-greedy fallback recovers the
	// minimal valid span.
	normalized := `[{"domanda": "Q"}] e poi altro testo troncato [{"doman`

	candidates := Parse(normalized)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Q", candidates[0]["domanda"])
}

func TestParse_UnrecoverableInput(t *testing.T) {
	assert.Empty(t, Parse(`[{"domanda": troncato`))
	assert.Empty(t, Parse(`non è json`))
	assert.Empty(t, Parse(``))
}

func TestParse_EmptyArray(t *testing.T) {
	candidates := Parse(`[]`)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}
