package tokenize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"

	"github.com/straja-ai/docuguard/internal/redact"
)

// minReconstructed is the share of non-space characters the prose tokens
// must account for before Prose falls back to Basic.
const minReconstructed = 0.8

// Prose tokenizes with the prose word tokenizer and maps every token back to
// its position in the text.
type Prose struct{}

// Tokenize implements Tokenizer.
func (Prose) Tokenize(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tokenize: %w", err)
	}

	words := doc.Tokens()
	tokens := make([]Token, 0, len(words))
	byteOff, runeOff := 0, 0
	covered := 0
	for _, w := range words {
		if w.Text == "" {
			continue
		}
		idx := strings.Index(text[byteOff:], w.Text)
		if idx < 0 {
			// prose rewrote the token; it cannot be placed in the text
			redact.Debugf("tokenize: dropping prose token %s not found after offset %d", redact.Mention(w.Text), runeOff)
			continue
		}
		startByte := byteOff + idx
		endByte := startByte + len(w.Text)
		start := runeOff + utf8.RuneCountInString(text[byteOff:startByte])
		n := utf8.RuneCountInString(w.Text)
		tokens = append(tokens, Token{
			Text:               w.Text,
			Start:              start,
			End:                start + n,
			TrailingWhitespace: spaceAt(text, endByte),
		})
		covered += n
		byteOff, runeOff = endByte, start+n
	}

	if float64(covered) < minReconstructed*float64(nonSpaceRunes(text)) {
		redact.Debugf("tokenize: prose covered %d characters, falling back to basic", covered)
		return basicTokens(text), nil
	}
	return tokens, nil
}

func nonSpaceRunes(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
