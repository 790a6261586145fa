// Package tokenize produces token streams with character spans, either from a
// dataset's tokens and trailing-whitespace flags or by tokenizing raw text.
package tokenize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/straja-ai/docuguard/internal/bio"
)

// Tokenizer kinds accepted by New.
const (
	KindBasic = "basic"
	KindProse = "prose"
)

// Token is one token with its code point span in the source text.
type Token struct {
	Text               string `json:"text"`
	Start              int    `json:"start_char"`
	End                int    `json:"end_char"`
	TrailingWhitespace bool   `json:"trailing_whitespace"`
}

// Tokenizer splits raw text into tokens.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// New returns the tokenizer registered under kind.
func New(kind string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindBasic:
		return Basic{}, nil
	case KindProse:
		return Prose{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", kind)
	}
}

// SpansFromWhitespace computes token spans for a text that is exactly the
// concatenation of tokens, each followed by a single space when its
// trailing-whitespace flag is set. Missing flags count as false.
func SpansFromWhitespace(tokens []string, trailingWhitespace []bool) []bio.TokenSpan {
	spans := make([]bio.TokenSpan, len(tokens))
	cur := 0
	for i, tok := range tokens {
		end := cur + utf8.RuneCountInString(tok)
		spans[i] = bio.TokenSpan{Start: cur, End: end}
		cur = end
		if i < len(trailingWhitespace) && trailingWhitespace[i] {
			cur++
		}
	}
	return spans
}

// Split separates tokens into the parallel slices Align expects.
func Split(tokens []Token) ([]string, []bio.TokenSpan) {
	texts := make([]string, len(tokens))
	spans := make([]bio.TokenSpan, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
		spans[i] = bio.TokenSpan{Start: t.Start, End: t.End}
	}
	return texts, spans
}

// Rebuild renders tokens back into text using their trailing-whitespace
// flags, the inverse of SpansFromWhitespace.
func Rebuild(tokens []string, trailingWhitespace []bool) string {
	var b strings.Builder
	for i, tok := range tokens {
		b.WriteString(tok)
		if i < len(trailingWhitespace) && trailingWhitespace[i] {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
