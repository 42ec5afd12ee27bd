package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare array untouched",
			raw:  `[{"domanda": "Q"}]`,
			want: `[{"domanda": "Q"}]`,
		},
		{
			name: "fenced code block with json tag",
			raw:  "```json\n[{\"domanda\": \"Q\"}]\n```",
			want: `[{"domanda": "Q"}]`,
		},
		{
			name: "fenced code block without tag",
			raw:  "```\n[1]\n```",
			want: `[1]`,
		},
		{
			name: "descriptive prefix",
			raw:  `Risposta: [{"domanda": "Q"}]`,
			want: `[{"domanda": "Q"}]`,
		},
		{
			name: "prose around the array",
			raw:  `Ecco le flashcard richieste: [{"domanda": "Q"}] spero siano utili!`,
			want: `[{"domanda": "Q"}]`,
		},
		{
			name: "single object wrapped in array brackets",
			raw:  `Ecco una flashcard: {"domanda": "Q"}`,
			want: `[{"domanda": "Q"}]`,
		},
		{
			name: "no json at all",
			raw:  "Mi dispiace, non posso aiutarti.",
			want: "[]",
		},
		{
			name: "empty input",
			raw:  "",
			want: "[]",
		},
		{
			name: "line comments stripped",
			raw:  "[{\"domanda\": \"Q\"} // commento\n]",
			want: `[{"domanda": "Q"} ]`,
		},
		{
			name: "block comments stripped",
			raw:  `[{"domanda": "Q"} /* nota */]`,
			want: `[{"domanda": "Q"} ]`,
		},
		{
			name: "control characters stripped",
			raw:  "[{\"domanda\": \"Q\x01\x02\"}]",
			want: `[{"domanda": "Q"}]`,
		},
		{
			name: "closing bracket before opening falls back to object",
			raw:  `] garbage {"domanda": "Q"}`,
			want: `[{"domanda": "Q"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_NeverPanics(t *testing.T) {
	inputs := []string{"[", "]", "{", "}", "}{", "][", "```", "[}", "{]"}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Normalize(input) }, "input %q", input)
	}
}
