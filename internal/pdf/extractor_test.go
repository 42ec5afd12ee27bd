package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "control characters replaced",
			text: "Il testo\x00della\x1fpagina contiene caratteri strani",
			want: "Il testo della pagina contiene caratteri strani",
		},
		{
			name: "isolated page numbers removed",
			text: "Prima riga di contenuto\n  42  \nSeconda riga di contenuto",
			want: "Prima riga di contenuto Seconda riga di contenuto",
		},
		{
			name: "short artifact lines dropped",
			text: "Una riga con contenuto vero\nab\nAltra riga con contenuto",
			want: "Una riga con contenuto vero Altra riga con contenuto",
		},
		{
			name: "whitespace collapsed",
			text: "Parole   separate \t da   spazi  multipli",
			want: "Parole separate da spazi multipli",
		},
		{
			name: "leading and trailing space trimmed",
			text: "   testo della pagina con contenuto   ",
			want: "testo della pagina con contenuto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.text))
		})
	}
}
