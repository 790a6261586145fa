package bio

import (
	"strings"

	"github.com/straja-ai/docuguard/internal/span"
)

// SplitTag splits "B-EMAIL" into ("B", "EMAIL"). Tags without a dash are
// returned as a bare label; "O" and "" yield empty strings.
func SplitTag(tag string) (string, string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == Outside {
		return "", ""
	}
	prefix, label, ok := strings.Cut(tag, "-")
	if !ok {
		return "", tag
	}
	return prefix, label
}

// Decode turns a tag sequence back into character spans. A B- tag, an I- tag
// after O, or an I- tag whose label differs from the open run starts a new
// span; a matching I- tag extends the open span to the token's end. Span.Text
// is left empty because tokens carry no document text.
//
// Tokens with an invalid span are skipped.
func Decode(tags []string, spans []TokenSpan) []span.Span {
	if len(tags) == 0 || len(spans) == 0 {
		return nil
	}
	var (
		out []span.Span
		cur *span.Span
	)
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}

	for i, tag := range tags {
		if i >= len(spans) {
			break
		}
		tok := spans[i]
		if tok.Start < 0 || tok.End <= tok.Start {
			continue
		}
		prefix, label := SplitTag(tag)
		if label == "" {
			flush()
			continue
		}
		if prefix == PrefixInside && cur != nil && cur.Label == label {
			if tok.End > cur.End {
				cur.End = tok.End
			}
			continue
		}
		flush()
		cur = &span.Span{Label: label, Start: tok.Start, End: tok.End}
	}
	flush()
	return out
}
