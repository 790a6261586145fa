package span

import (
	"fmt"
	"slices"

	"github.com/straja-ai/docuguard/internal/redact"
)

// Resolve prunes candidates that are fully covered by earlier, longer
// candidates.
//
// Candidates are visited by ascending Start, longest first at equal Start. A
// candidate is rejected only when every one of its characters is already
// covered by accepted spans. A candidate that overlaps an accepted span but
// reaches at least one uncovered character is accepted whole, so the result
// may still contain partially overlapping spans.
//
// The result is sorted by Start. candidates is not modified. Any span with a
// negative Start or End <= Start fails the whole call with ErrInvalidSpan.
func Resolve(candidates []Span) ([]Span, error) {
	for i, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return b.Len() - a.Len()
	})

	var (
		covered  coverage
		accepted = make([]Span, 0, len(sorted))
	)
	for _, c := range sorted {
		if covered.covers(c.Start, c.End) {
			redact.Debugf("span: rejected %s [%d, %d) as fully covered", c.Label, c.Start, c.End)
			continue
		}
		accepted = append(accepted, c)
		covered.add(c.Start, c.End)
	}

	slices.SortStableFunc(accepted, func(a, b Span) int {
		return a.Start - b.Start
	})
	return accepted, nil
}
