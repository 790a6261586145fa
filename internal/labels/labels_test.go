package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	cases := []struct {
		real, bench string
	}{
		{"NAME", "NAME_STUDENT"},
		{"PHONE_NUMBER", "PHONE_NUM"},
		{"ADDRESS", "STREET_ADDRESS"},
		{"ID_NUMBER", "ID_NUM"},
		{"URL", "URL_PERSONAL"},
		{"EMAIL", "EMAIL"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bench, ToBenchmark(tc.real))
		assert.Equal(t, tc.real, ToRealWorld(tc.bench))
	}

	assert.Equal(t, "SSN", ToBenchmark("SSN"))
	assert.Equal(t, "CUSTOM", ToRealWorld("CUSTOM"))
}

func TestModeNormalize(t *testing.T) {
	assert.Equal(t, "NAME_STUDENT", ModeBenchmark.Normalize("NAME"))
	assert.Equal(t, "NAME_STUDENT", ModeBenchmark.Normalize("NAME_STUDENT"))
	assert.Equal(t, "NAME", ModeRealWorld.Normalize("NAME_STUDENT"))
	assert.Equal(t, "CREDIT_CARD", ModeRealWorld.Normalize("CREDIT_CARD"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Benchmark")
	require.NoError(t, err)
	assert.Equal(t, ModeBenchmark, m)

	m, err = ParseMode("real-world")
	require.NoError(t, err)
	assert.Equal(t, ModeRealWorld, m)

	_, err = ParseMode("both")
	require.Error(t, err)
}

func TestModeSet(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"EMAIL", "ID_NUM", "NAME_STUDENT", "PHONE_NUM", "STREET_ADDRESS", "URL_PERSONAL", "USERNAME",
	}, ModeBenchmark.Set().ToSlice())
	assert.Equal(t, 13, ModeRealWorld.Set().Cardinality())
	assert.True(t, ModeRealWorld.Set().Contains("SSN"))
	assert.False(t, ModeBenchmark.Set().Contains("SSN"))
}

func TestNormalizedLabelsStayInVocabulary(t *testing.T) {
	for _, mode := range []Mode{ModeBenchmark, ModeRealWorld} {
		for _, label := range ModeBenchmark.Set().Union(ModeRealWorld.Set()).ToSlice() {
			got := mode.Normalize(label)
			if mode == ModeBenchmark && !Benchmark.Contains(label) && realToBenchmark[label] == "" {
				continue
			}
			if mode == ModeRealWorld && !RealWorld.Contains(label) && benchmarkToReal[label] == "" {
				continue
			}
			assert.True(t, mode.Set().Contains(got), "%s: %s -> %s", mode, label, got)
		}
	}
}
