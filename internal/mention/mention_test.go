package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straja-ai/docuguard/internal/span"
)

func TestParseFencedReply(t *testing.T) {
	content := "Here is what I found:\n```json\n[\n  {\"text\": \"Jane Doe\", \"label\": \"NAME_STUDENT\"},\n  {\"text\": \"jane@x.io\", \"label\": \"EMAIL\"}\n]\n```"
	got, err := Parse(content)
	require.NoError(t, err)
	assert.Equal(t, []span.Mention{
		{Text: "Jane Doe", Label: "NAME_STUDENT"},
		{Text: "jane@x.io", Label: "EMAIL"},
	}, got)
}

func TestParseEmptyList(t *testing.T) {
	got, err := Parse("[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseKeepsMalformedItemsForLocateToSkip(t *testing.T) {
	got, err := Parse(`[{"text": 42, "label": "ID_NUM"}, "stray", {"label": "EMAIL"}, {"text": "a", "label": "X", "extra": true}]`)
	require.NoError(t, err)
	assert.Equal(t, []span.Mention{
		{Text: "", Label: "ID_NUM"},
		{Text: "", Label: "EMAIL"},
		{Text: "a", Label: "X"},
	}, got)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("I could not find any PII.")
	require.ErrorIs(t, err, ErrNoList)

	_, err = Parse("] before [")
	require.ErrorIs(t, err, ErrNoList)

	_, err = Parse(`[{"text": "a", "label": }]`)
	require.ErrorIs(t, err, ErrMalformed)
}
