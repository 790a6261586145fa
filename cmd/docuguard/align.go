package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/straja-ai/docuguard/internal/bio"
	"github.com/straja-ai/docuguard/internal/config"
	"github.com/straja-ai/docuguard/internal/mention"
	"github.com/straja-ai/docuguard/internal/pipeline"
	"github.com/straja-ai/docuguard/internal/span"
	"github.com/straja-ai/docuguard/internal/telemetry"
)

type inputDocument struct {
	ID                 string          `json:"id"`
	Text               string          `json:"text"`
	Tokens             []string        `json:"tokens"`
	TrailingWhitespace []bool          `json:"trailing_whitespace"`
	TokenSpans         []bio.TokenSpan `json:"token_spans"`
	Mentions           []span.Mention  `json:"mentions"`
	LLMOutput          string          `json:"llm_output"`
}

type outputDocument struct {
	ID       string      `json:"id"`
	Entities []span.Span `json:"entities"`
	Tags     []string    `json:"tags"`
	Decoded  []span.Span `json:"decoded"`
	Error    string      `json:"error,omitempty"`
}

func alignCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "align",
		Short: "Locate mentions, resolve overlaps and emit BIO tags",
		Long: `Reads a JSON document or an array of documents and writes one result per
document with the resolved entities, the BIO tag per token and the spans
decoded back from those tags. Mentions come from "mentions", or are parsed
from the raw identifier answer in "llm_output".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, opts)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return runAlign(cmd.Context(), cmd, opts.configPath, data)
		},
	}
}

func runAlign(ctx context.Context, cmd *cobra.Command, configPath string, data []byte) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tel, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:  cfg.Telemetry.Enabled,
		Endpoint: cfg.Telemetry.Endpoint,
		Protocol: cfg.Telemetry.Protocol,
		Service:  cfg.Telemetry.Service,
		Version:  firstNonEmpty(cfg.Telemetry.Version, version),
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer tel.Shutdown(context.Background())

	p, err := pipeline.FromConfig(cfg, tel)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	inputs, err := decodeInputs(data)
	if err != nil {
		return err
	}

	docs := make([]pipeline.Document, len(inputs))
	parseErrs := make([]error, len(inputs))
	for i, in := range inputs {
		docs[i] = pipeline.Document{
			ID:                 in.ID,
			Text:               in.Text,
			Tokens:             in.Tokens,
			TrailingWhitespace: in.TrailingWhitespace,
			TokenSpans:         in.TokenSpans,
			Mentions:           in.Mentions,
		}
		if in.Mentions == nil && in.LLMOutput != "" {
			docs[i].Mentions, parseErrs[i] = mention.Parse(in.LLMOutput)
		}
	}

	results, err := p.ProcessBatch(ctx, docs)
	if err != nil {
		return err
	}

	out := make([]outputDocument, len(results))
	for i, res := range results {
		out[i] = toOutput(res, parseErrs[i])
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if len(out) == 1 && !gjson.ParseBytes(data).IsArray() {
		return enc.Encode(out[0])
	}
	return enc.Encode(out)
}

func decodeInputs(data []byte) ([]inputDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("input is not valid JSON")
	}
	if gjson.ParseBytes(data).IsArray() {
		var docs []inputDocument
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("decode documents: %w", err)
		}
		return docs, nil
	}
	var doc inputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return []inputDocument{doc}, nil
}

func toOutput(res pipeline.Result, parseErr error) outputDocument {
	out := outputDocument{
		ID:       res.DocumentID,
		Entities: res.Resolved,
		Tags:     res.Tags,
	}
	if out.Entities == nil {
		out.Entities = []span.Span{}
	}
	switch {
	case res.Err != nil:
		out.Error = res.Err.Error()
	case parseErr != nil:
		out.Error = fmt.Sprintf("llm_output: %v", parseErr)
	}
	if res.Err == nil {
		out.Decoded = fillText(bio.Decode(res.Tags, res.TokenSpans), res.Text)
	}
	return out
}

// fillText sets each decoded span's Text from the document text.
func fillText(spans []span.Span, text string) []span.Span {
	runes := []rune(text)
	for i := range spans {
		if spans[i].End <= len(runes) {
			spans[i].Text = string(runes[spans[i].Start:spans[i].End])
		}
	}
	if spans == nil {
		return []span.Span{}
	}
	return spans
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
