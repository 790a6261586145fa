// Package labels holds the PII label vocabularies and the mapping between the
// benchmark dataset labels and the general-purpose ones.
package labels

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Mode selects which vocabulary labels are normalized to.
type Mode string

const (
	ModeBenchmark Mode = "benchmark"
	ModeRealWorld Mode = "real_world"
)

var (
	// Benchmark is the label set of the student-essay PII benchmark.
	Benchmark = mapset.NewSet[string](
		"EMAIL", "NAME_STUDENT", "USERNAME", "PHONE_NUM",
		"STREET_ADDRESS", "URL_PERSONAL", "ID_NUM",
	)

	// RealWorld is the broader label set used outside the benchmark.
	RealWorld = mapset.NewSet[string](
		"NAME", "EMAIL", "PHONE_NUMBER", "ADDRESS", "SSN",
		"CREDIT_CARD", "PASSWORD", "USERNAME", "DATE_OF_BIRTH",
		"BANK_ACCOUNT", "ID_NUMBER", "IP_ADDRESS", "URL",
	)
)

var realToBenchmark = map[string]string{
	"NAME":         "NAME_STUDENT",
	"EMAIL":        "EMAIL",
	"PHONE_NUMBER": "PHONE_NUM",
	"ADDRESS":      "STREET_ADDRESS",
	"USERNAME":     "USERNAME",
	"ID_NUMBER":    "ID_NUM",
	"URL":          "URL_PERSONAL",
}

var benchmarkToReal = func() map[string]string {
	out := make(map[string]string, len(realToBenchmark))
	for rw, bench := range realToBenchmark {
		out[bench] = rw
	}
	return out
}()

// ToBenchmark maps a real-world label to its benchmark name. Labels without a
// counterpart are returned unchanged.
func ToBenchmark(label string) string {
	if mapped, ok := realToBenchmark[label]; ok {
		return mapped
	}
	return label
}

// ToRealWorld maps a benchmark label to its real-world name. Labels without a
// counterpart are returned unchanged.
func ToRealWorld(label string) string {
	if mapped, ok := benchmarkToReal[label]; ok {
		return mapped
	}
	return label
}

// ParseMode accepts "benchmark" or "real_world" (case-insensitive, "-" allowed).
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case string(ModeBenchmark):
		return ModeBenchmark, nil
	case string(ModeRealWorld), "realworld":
		return ModeRealWorld, nil
	default:
		return "", fmt.Errorf("unknown label mode %q", s)
	}
}

// Normalize maps label into the mode's vocabulary.
func (m Mode) Normalize(label string) string {
	if m == ModeRealWorld {
		return ToRealWorld(label)
	}
	return ToBenchmark(label)
}

// Set returns the vocabulary of the mode.
func (m Mode) Set() mapset.Set[string] {
	if m == ModeRealWorld {
		return RealWorld
	}
	return Benchmark
}
