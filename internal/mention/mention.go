// Package mention extracts PII mentions from the raw reply of an LLM-backed
// entity identifier.
package mention

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/straja-ai/docuguard/internal/span"
)

var (
	// ErrNoList is returned when the reply contains no bracketed list.
	ErrNoList = errors.New("no JSON list in identifier output")
	// ErrMalformed is returned when the bracketed list is not a JSON array.
	ErrMalformed = errors.New("malformed JSON list in identifier output")
)

// Parse reads the JSON array between the first '[' and the last ']' of
// content, ignoring any prose or code fences around it. Every object element
// becomes a Mention; non-string "text" or "label" values are left empty so
// span.Locate skips them. Non-object elements are dropped.
func Parse(content string) ([]span.Mention, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end < start {
		return nil, ErrNoList
	}
	raw := content[start : end+1]
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	list := gjson.Parse(raw)
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: not an array", ErrMalformed)
	}

	out := []span.Mention{}
	list.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		out = append(out, span.Mention{
			Text:  stringField(item, "text"),
			Label: stringField(item, "label"),
		})
		return true
	})
	return out, nil
}

func stringField(item gjson.Result, key string) string {
	v := item.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}
