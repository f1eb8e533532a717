package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTagger returns canned model output so extraction logic is tested
// independently of model accuracy.
type stubTagger struct {
	entities []Entity
	tokens   []Token
}

func (s stubTagger) Entities(string) ([]Entity, error) { return s.entities, nil }
func (s stubTagger) Tokens(string) ([]Token, error)    { return s.tokens, nil }

type stubSpotter string

func (s stubSpotter) Spot(string) (string, bool) { return string(s), s != "" }

func TestExtractFirstGPEWins(t *testing.T) {
	tagger := stubTagger{
		entities: []Entity{
			{Text: "John", Label: "PERSON"},
			{Text: "Paris", Label: "GPE"},
			{Text: "Tokyo", Label: "GPE"},
		},
	}
	ex := NewExtractor(tagger, stubSpotter(""))

	res, err := ex.Extract("Will John fly from Paris to Tokyo?")
	require.NoError(t, err)
	assert.Equal(t, "Paris", res.Location)
	assert.Empty(t, res.DateExpression)
}

func TestExtractDateExpression(t *testing.T) {
	tagger := stubTagger{entities: []Entity{{Text: "New York", Label: "GPE"}}}
	ex := NewExtractor(tagger, stubSpotter("Friday"))

	res, err := ex.Extract("Tell me the forecast for New York on Friday")
	require.NoError(t, err)
	assert.Equal(t, "New York", res.Location)
	assert.Equal(t, "Friday", res.DateExpression)
}

func TestExtractFallbackNounPhrase(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name: "preposition then bare noun",
			tokens: []Token{
				{Text: "What", Tag: "WP"}, {Text: "is", Tag: "VBZ"},
				{Text: "the", Tag: "DT"}, {Text: "weather", Tag: "NN"},
				{Text: "in", Tag: "IN"}, {Text: "Springfield", Tag: "NNP"},
				{Text: "?", Tag: "."},
			},
			want: "Springfield",
		},
		{
			name: "phrase keeps its determiner",
			tokens: []Token{
				{Text: "Pack", Tag: "VB"}, {Text: "for", Tag: "IN"},
				{Text: "the", Tag: "DT"}, {Text: "coast", Tag: "NN"},
			},
			want: "the coast",
		},
		{
			// The loose substring match: "during" contains "in".
			name: "substring governor",
			tokens: []Token{
				{Text: "Conditions", Tag: "NNS"}, {Text: "during", Tag: "IN"},
				{Text: "my", Tag: "PRP$"}, {Text: "trip", Tag: "NN"},
			},
			want: "my trip",
		},
		{
			name: "no governing word",
			tokens: []Token{
				{Text: "Hello", Tag: "UH"}, {Text: "there", Tag: "RB"},
			},
			want: "",
		},
		{
			// A governor followed by no noun yields nothing.
			name: "governor without noun phrase",
			tokens: []Token{
				{Text: "How's", Tag: "WRB"}, {Text: "it", Tag: "PRP"},
				{Text: "going", Tag: "VBG"}, {Text: "today", Tag: "RB"},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewExtractor(stubTagger{tokens: tt.tokens}, stubSpotter(""))
			res, err := ex.Extract("irrelevant, the stub ignores it")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Location)
		})
	}
}

func TestExtractGPEBeatsFallback(t *testing.T) {
	tagger := stubTagger{
		entities: []Entity{{Text: "London", Label: "GPE"}},
		tokens: []Token{
			{Text: "in", Tag: "IN"}, {Text: "town", Tag: "NN"},
		},
	}
	ex := NewExtractor(tagger, stubSpotter(""))

	res, err := ex.Extract("weather in town, meaning London")
	require.NoError(t, err)
	assert.Equal(t, "London", res.Location)
}
