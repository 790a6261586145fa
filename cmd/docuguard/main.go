package main

import (
	"github.com/straja-ai/docuguard/internal/redact"
)

var version = "dev"

func main() {
	if err := rootCommand().Execute(); err != nil {
		redact.Fatalf("docuguard: %v", err)
	}
}
