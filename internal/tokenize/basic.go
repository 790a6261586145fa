package tokenize

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// word runs, or any single non-space character
var basicTokenRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|\S`)

// Basic splits text into word runs and single punctuation characters.
type Basic struct{}

// Tokenize implements Tokenizer. It never fails.
func (Basic) Tokenize(text string) ([]Token, error) {
	return basicTokens(text), nil
}

func basicTokens(text string) []Token {
	matches := basicTokenRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	byteOff, runeOff := 0, 0
	for _, m := range matches {
		start := runeOff + utf8.RuneCountInString(text[byteOff:m[0]])
		end := start + utf8.RuneCountInString(text[m[0]:m[1]])
		tokens = append(tokens, Token{
			Text:               text[m[0]:m[1]],
			Start:              start,
			End:                end,
			TrailingWhitespace: spaceAt(text, m[1]),
		})
		byteOff, runeOff = m[1], end
	}
	return tokens
}

func spaceAt(text string, byteOff int) bool {
	if byteOff >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[byteOff:])
	return unicode.IsSpace(r)
}
