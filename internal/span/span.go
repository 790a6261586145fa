// Package span turns PII mentions reported by an external identifier into
// character spans of a document and prunes overlapping candidates.
//
// Offsets are Unicode code point offsets into the document text and End is
// exclusive, so for a span s over text t:
//
//	string([]rune(t)[s.Start:s.End]) == s.Text
package span

import (
	"errors"
	"fmt"

	"github.com/straja-ai/docuguard/internal/redact"
)

// ErrInvalidSpan is returned for spans with a negative start or End <= Start.
var ErrInvalidSpan = errors.New("invalid span")

// Mention is a claim that the literal Text appears in the document as an
// instance of the PII category Label.
type Mention struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Valid reports whether both fields are set.
func (m Mention) Valid() bool {
	return m.Text != "" && m.Label != ""
}

// Span is one located occurrence of a mention. It is used both for
// candidates returned by Locate and for spans kept by Resolve.
type Span struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Start int    `json:"start_char"`
	End   int    `json:"end_char"`
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Validate checks Start >= 0 and End > Start.
func (s Span) Validate() error {
	if s.Start < 0 || s.End <= s.Start {
		return fmt.Errorf("%w: [%d, %d) label=%s", ErrInvalidSpan, s.Start, s.End, s.Label)
	}
	return nil
}

// Overlaps reports whether the two spans share at least one character.
func (s Span) Overlaps(o Span) bool {
	return max(s.Start, o.Start) < min(s.End, o.End)
}

var defaultLogger redact.Logger = redact.Std()
