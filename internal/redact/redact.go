package redact

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	authHeaderRe  = regexp.MustCompile(`(?i)(authorization\s*[:=]\s*bearer\s+)([A-Za-z0-9._\-+/=]+)`)
	bearerRe      = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._\-+/=]+)`)
	apiKeyValueRe = regexp.MustCompile(`(?i)(api[_-]?key(?:s)?\s*[:=]\s*)([A-Za-z0-9._\-+/=]+)`)
	providerKeyRe = regexp.MustCompile(`\bsk-(?:or-v1-)?[A-Za-z0-9]{16,}\b`)
	tokenishKeyRe = regexp.MustCompile(`(?i)(secret|token)\s*[:=]\s*([A-Za-z0-9._\-+/=]{6,})`)
)

// Logger is the minimal logging surface the core packages depend on.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Std returns a Logger that writes redacted lines through the standard logger.
func Std() Logger { return stdLogger{} }

type stdLogger struct{}

func (stdLogger) Printf(format string, args ...interface{}) { Logf(format, args...) }

// String redacts known secret patterns from free-form strings.
func String(s string) string {
	if s == "" {
		return s
	}

	out := s
	out = authHeaderRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = bearerRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = apiKeyValueRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = providerKeyRe.ReplaceAllString(out, "sk-[REDACTED]")
	out = tokenishKeyRe.ReplaceAllStringFunc(out, func(s string) string {
		if strings.Contains(s, "[REDACTED]") {
			return s
		}
		matches := tokenishKeyRe.FindStringSubmatch(s)
		if len(matches) < 3 {
			return s
		}
		return matches[1] + "=[REDACTED]"
	})
	for strings.Contains(out, "[REDACTED][REDACTED]") {
		out = strings.ReplaceAll(out, "[REDACTED][REDACTED]", "[REDACTED]")
	}
	return out
}

// Mention masks a PII mention so it can be logged. Only the first rune and
// the rune count survive, e.g. "Jane Doe" -> "J*******(8)".
func Mention(text string) string {
	if text == "" {
		return `""`
	}
	if !utf8.ValidString(text) {
		return fmt.Sprintf("<invalid utf-8, %d bytes>", len(text))
	}
	n := utf8.RuneCountInString(text)
	first, _ := utf8.DecodeRuneInString(text)
	return fmt.Sprintf("%c%s(%d)", first, strings.Repeat("*", n-1), n)
}

// Sprintf formats like fmt.Sprintf and redacts the result.
func Sprintf(format string, args ...interface{}) string {
	return String(fmt.Sprintf(format, args...))
}

// Logf prints a redacted log line.
func Logf(format string, args ...interface{}) {
	log.Print(Sprintf(format, args...))
}

// Debugf prints a redacted log line when DOCUGUARD_DEBUG=1.
func Debugf(format string, args ...interface{}) {
	if !Debug() {
		return
	}
	log.Print(Sprintf("debug: "+format, args...))
}

// Fatalf prints a redacted fatal log line.
func Fatalf(format string, args ...interface{}) {
	log.Fatal(Sprintf(format, args...))
}

// Debug reports whether debug logging is enabled.
func Debug() bool {
	return strings.TrimSpace(os.Getenv("DOCUGUARD_DEBUG")) == "1"
}
