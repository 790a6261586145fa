package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straja-ai/docuguard/internal/bio"
)

func TestSpansFromWhitespace(t *testing.T) {
	tokens := []string{"Hi", ",", "I", "am", "Zoë", "."}
	ws := []bool{false, true, true, true, false, false}

	spans := SpansFromWhitespace(tokens, ws)
	assert.Equal(t, []bio.TokenSpan{
		{Start: 0, End: 2},
		{Start: 2, End: 3},
		{Start: 4, End: 5},
		{Start: 6, End: 8},
		{Start: 9, End: 12},
		{Start: 12, End: 13},
	}, spans)

	text := []rune(Rebuild(tokens, ws))
	for i, s := range spans {
		assert.Equal(t, tokens[i], string(text[s.Start:s.End]))
	}
}

func TestSpansFromWhitespaceShortFlags(t *testing.T) {
	spans := SpansFromWhitespace([]string{"a", "b", "c"}, []bool{true})
	assert.Equal(t, []bio.TokenSpan{{Start: 0, End: 1}, {Start: 2, End: 3}, {Start: 3, End: 4}}, spans)
}

func TestBasicTokenize(t *testing.T) {
	text := "Email: jane_doe@ex.com, tel 555-1234.\nZoë"
	tokens, err := Basic{}.Tokenize(text)
	require.NoError(t, err)

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{
		"Email", ":", "jane_doe", "@", "ex", ".", "com", ",", "tel", "555", "-", "1234", ".", "Zoë",
	}, texts)

	runes := []rune(text)
	for _, tok := range tokens {
		assert.Equal(t, tok.Text, string(runes[tok.Start:tok.End]))
	}
	assert.False(t, tokens[0].TrailingWhitespace)
	assert.True(t, tokens[1].TrailingWhitespace)
	assert.True(t, tokens[12].TrailingWhitespace, "newline counts as whitespace")
	assert.False(t, tokens[13].TrailingWhitespace)
}

func TestBasicTokenizeEmpty(t *testing.T) {
	tokens, err := Basic{}.Tokenize("  \n\t")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestProseTokenizeSpansMatchText(t *testing.T) {
	text := "Please contact Maria Garcia at maria.garcia@example.org or call 555-0199 today."
	tokens, err := Prose{}.Tokenize(text)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	runes := []rune(text)
	prevEnd := 0
	for _, tok := range tokens {
		require.GreaterOrEqual(t, tok.Start, prevEnd)
		assert.Equal(t, tok.Text, string(runes[tok.Start:tok.End]))
		prevEnd = tok.End
	}
	assert.Equal(t, "Please", tokens[0].Text)
}

func TestNew(t *testing.T) {
	tok, err := New("")
	require.NoError(t, err)
	assert.IsType(t, Basic{}, tok)

	tok, err = New("Prose")
	require.NoError(t, err)
	assert.IsType(t, Prose{}, tok)

	_, err = New("nltk")
	require.Error(t, err)
}

func TestSplit(t *testing.T) {
	texts, spans := Split([]Token{{Text: "a", Start: 0, End: 1}, {Text: "bc", Start: 2, End: 4}})
	assert.Equal(t, []string{"a", "bc"}, texts)
	assert.Equal(t, []bio.TokenSpan{{Start: 0, End: 1}, {Start: 2, End: 4}}, spans)
}
