package span

import (
	"strings"
	"unicode/utf8"

	"github.com/straja-ai/docuguard/internal/redact"
)

type locateOptions struct {
	logger redact.Logger
}

// LocateOption configures Locate.
type LocateOption func(*locateOptions)

// WithLogger routes skip warnings to l instead of the package logger.
func WithLogger(l redact.Logger) LocateOption {
	return func(o *locateOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Locate finds every occurrence of each mention in fullText. The mention text
// is matched literally and case-sensitively; occurrences of one mention never
// overlap each other because the scan resumes at the end of each match.
//
// Invalid mentions are logged and skipped. Output follows mention order, then
// occurrence order.
func Locate(fullText string, mentions []Mention, opts ...LocateOption) []Span {
	o := locateOptions{logger: defaultLogger}
	for _, opt := range opts {
		opt(&o)
	}

	var out []Span
	for i, m := range mentions {
		if !m.Valid() {
			o.logger.Printf("span: skipping invalid mention index=%d text=%s label=%q", i, redact.Mention(m.Text), m.Label)
			continue
		}
		if !utf8.ValidString(m.Text) {
			o.logger.Printf("span: skipping mention index=%d label=%s: text is not valid utf-8", i, m.Label)
			continue
		}
		out = appendOccurrences(out, fullText, m)
	}
	redact.Debugf("span: located %d candidates from %d mentions", len(out), len(mentions))
	return out
}

func appendOccurrences(out []Span, fullText string, m Mention) []Span {
	textRunes := utf8.RuneCountInString(m.Text)

	// byteOff/runeOff track the scan position in both units so rune offsets
	// are computed incrementally instead of recounting from zero per match.
	byteOff, runeOff := 0, 0
	for byteOff <= len(fullText) {
		idx := strings.Index(fullText[byteOff:], m.Text)
		if idx < 0 {
			break
		}
		start := runeOff + utf8.RuneCountInString(fullText[byteOff:byteOff+idx])
		out = append(out, Span{
			Label: m.Label,
			Text:  m.Text,
			Start: start,
			End:   start + textRunes,
		})
		byteOff += idx + len(m.Text)
		runeOff = start + textRunes
	}
	return out
}
