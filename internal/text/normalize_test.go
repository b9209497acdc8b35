package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "simple description",
			description: "Mercado Extra",
			want:        []string{"mercado", "extra"},
		},
		{
			name:        "extra whitespace",
			description: "  Uber   23/04  ",
			want:        []string{"uber", "23/04"},
		},
		{
			name:        "empty",
			description: "",
			want:        []string{},
		},
		{
			name:        "only whitespace",
			description: "   \t ",
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, Tokenize(tt.description))
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "plain word", token: "mercado", want: "mercado"},
		{name: "digits stripped", token: "uber23", want: "uber"},
		{name: "punctuation stripped", token: "pague-menos!", want: "paguemenos"},
		{name: "diacritics preserved", token: "Alimentação", want: "alimentação"},
		{name: "pure number", token: "23/04", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWord(tt.token))
		})
	}
}

func TestSignificantWords(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "drops short and numeric tokens",
			description: "Uber 23/04 do Zé",
			want:        []string{"uber"},
		},
		{
			name:        "keeps accents",
			description: "Açaí da esquina",
			want:        []string{"açaí", "esquina"},
		},
		{
			name:        "empty description",
			description: "",
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignificantWords(tt.description))
		})
	}
}
