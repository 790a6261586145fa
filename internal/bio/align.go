// Package bio projects resolved character spans onto a token stream as
// Begin/Inside/Outside tags, and decodes tag sequences back into spans.
package bio

import (
	"errors"
	"fmt"

	"github.com/straja-ai/docuguard/internal/span"
)

// Outside is the tag of a token that belongs to no entity.
const Outside = "O"

// Tag prefixes for the first and following tokens of an entity.
const (
	PrefixBegin  = "B"
	PrefixInside = "I"
)

// ErrLengthMismatch is returned when tokens and token spans are not index-aligned.
var ErrLengthMismatch = errors.New("tokens and token spans differ in length")

// TokenSpan is the character range [Start, End) of one token.
type TokenSpan struct {
	Start int `json:"start_char"`
	End   int `json:"end_char"`
}

type assignment struct {
	label    string
	entityID int
}

// Align returns one tag per token for the given entities.
//
// Entities get sequential ids in input order. A token belongs to the first
// entity (by that order) sharing at least one character with it; later
// entities never take a token away. A token is tagged I- only when the
// previous token belongs to the same entity id, so a gap or a different
// entity always starts a new B- run.
//
// Token spans need not be sorted or disjoint.
func Align(tokens []string, spans []TokenSpan, entities []span.Span) ([]string, error) {
	if len(tokens) != len(spans) {
		return nil, fmt.Errorf("%w: %d tokens, %d spans", ErrLengthMismatch, len(tokens), len(spans))
	}

	assigned := make([]*assignment, len(tokens))
	for id, ent := range entities {
		for i, tok := range spans {
			if assigned[i] != nil {
				continue
			}
			if ent.Overlaps(span.Span{Start: tok.Start, End: tok.End}) {
				assigned[i] = &assignment{label: ent.Label, entityID: id}
			}
		}
	}

	tags := make([]string, len(tokens))
	for i, a := range assigned {
		if a == nil {
			tags[i] = Outside
			continue
		}
		prefix := PrefixBegin
		if i > 0 && assigned[i-1] != nil && assigned[i-1].entityID == a.entityID {
			prefix = PrefixInside
		}
		tags[i] = Tag(prefix, a.label)
	}
	return tags, nil
}

// Tag joins a prefix and a label, e.g. Tag("B", "EMAIL") == "B-EMAIL".
func Tag(prefix, label string) string {
	return prefix + "-" + label
}
