package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRedaction(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		disallow []string
		require  []string
	}{
		{
			name:     "bearer header",
			input:    "Authorization: Bearer sk-secret-123",
			disallow: []string{"sk-secret-123"},
			require:  []string{"[REDACTED]"},
		},
		{
			name:     "api key value",
			input:    "api_key=abc123def",
			disallow: []string{"abc123def"},
			require:  []string{"api_key=[REDACTED]"},
		},
		{
			name:     "openrouter key",
			input:    "using key sk-or-v1-252125efd305d132723699eefdf46aa3 for request",
			disallow: []string{"252125efd305d132723699eefdf46aa3"},
			require:  []string{"sk-[REDACTED]"},
		},
		{
			name:     "mixed token",
			input:    "Bearer abc token=supersecret secret=anotherone",
			disallow: []string{"abc", "supersecret", "anotherone"},
			require:  []string{"[REDACTED]"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := String(tc.input)
			for _, bad := range tc.disallow {
				assert.NotContains(t, out, bad)
			}
			for _, want := range tc.require {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestMentionMasking(t *testing.T) {
	cases := map[string]string{
		"":         `""`,
		"J":        "J(1)",
		"Jane Doe": "J*******(8)",
		"Zoë":      "Z**(3)",
		"\xff\xfe": "<invalid utf-8, 2 bytes>",
	}
	for in, want := range cases {
		assert.Equal(t, want, Mention(in), "Mention(%q)", in)
	}
}

func TestDebugFollowsEnvironment(t *testing.T) {
	t.Setenv("DOCUGUARD_DEBUG", "1")
	assert.True(t, Debug())
	t.Setenv("DOCUGUARD_DEBUG", "0")
	assert.False(t, Debug())
}
