package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestAlignSingleDocument(t *testing.T) {
	in := `{
  "id": "essay-1",
  "tokens": ["My", "name", "is", "John", "Smith", "."],
  "trailing_whitespace": [true, true, true, true, false, false],
  "mentions": [{"text": "John Smith", "label": "NAME"}]
}`
	out, err := execute(t, in, "align")
	require.NoError(t, err)

	var doc outputDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "essay-1", doc.ID)
	assert.Equal(t, []string{"O", "O", "O", "B-NAME_STUDENT", "I-NAME_STUDENT", "O"}, doc.Tags)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, 11, doc.Entities[0].Start)
	assert.Equal(t, 21, doc.Entities[0].End)
	require.Len(t, doc.Decoded, 1)
	assert.Equal(t, "John Smith", doc.Decoded[0].Text)
	assert.Empty(t, doc.Error)
}

func TestAlignBatchWithLLMOutput(t *testing.T) {
	in := `[
  {"id": "a", "text": "Write to ana@mail.org today", "llm_output": "Found: [{\"text\": \"ana@mail.org\", \"label\": \"EMAIL\"}]"},
  {"id": "b", "text": "Nothing here", "llm_output": "no entities"},
  {"id": "c", "tokens": ["x", "y"], "token_spans": [{"start_char": 0, "end_char": 1}]}
]`
	out, err := execute(t, in, "align")
	require.NoError(t, err)

	var docs []outputDocument
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 3)

	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, []string{"O", "O", "B-EMAIL", "I-EMAIL", "I-EMAIL", "I-EMAIL", "I-EMAIL", "O"}, docs[0].Tags)
	require.Len(t, docs[0].Decoded, 1)
	assert.Equal(t, "ana@mail.org", docs[0].Decoded[0].Text)

	assert.Contains(t, docs[1].Error, "llm_output")
	assert.Equal(t, []string{"O", "O"}, docs[1].Tags)

	assert.Contains(t, docs[2].Error, "differ in length")
	assert.Nil(t, docs[2].Tags)
}

func TestAlignRejectsInvalidJSON(t *testing.T) {
	_, err := execute(t, "{not json", "align")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestTokenizeCommand(t *testing.T) {
	out, err := execute(t, "Zoë lives here.\n", "tokenize")
	require.NoError(t, err)
	assert.Equal(t, "0\t3\tZoë\n4\t9\tlives\n10\t14\there\n14\t15\t.\n", out)
}

func TestTokenizeUnknownKind(t *testing.T) {
	_, err := execute(t, "text", "tokenize", "--tokenizer", "nltk")
	assert.Error(t, err)
}
