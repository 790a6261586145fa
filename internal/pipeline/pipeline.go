// Package pipeline runs the span-to-BIO steps over documents: locate mention
// occurrences, resolve overlaps, normalize labels and align onto tokens.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/straja-ai/docuguard/internal/bio"
	"github.com/straja-ai/docuguard/internal/config"
	"github.com/straja-ai/docuguard/internal/labels"
	"github.com/straja-ai/docuguard/internal/redact"
	"github.com/straja-ai/docuguard/internal/span"
	"github.com/straja-ai/docuguard/internal/telemetry"
	"github.com/straja-ai/docuguard/internal/tokenize"
)

// ErrInvalidDocument is returned for documents whose fields contradict each
// other.
var ErrInvalidDocument = errors.New("invalid document")

// Document is one unit of work.
type Document struct {
	ID                 string
	Text               string
	Tokens             []string
	TrailingWhitespace []bool
	TokenSpans         []bio.TokenSpan
	Mentions           []span.Mention
}

// Result is the outcome of processing one Document. Err is set when the
// document failed; the other fields are then partial.
type Result struct {
	DocumentID string
	Text       string
	Tokens     []string
	TokenSpans []bio.TokenSpan
	Candidates []span.Span
	Resolved   []span.Span
	Tags       []string
	Err        error
}

// Options configures a Pipeline.
type Options struct {
	Workers   int
	Mode      labels.Mode
	Tokenizer tokenize.Tokenizer
	Telemetry *telemetry.Provider
	Logger    redact.Logger
}

// Pipeline processes documents with a fixed label mode and tokenizer. It is
// safe for concurrent use.
type Pipeline struct {
	workers   int
	mode      labels.Mode
	tokenizer tokenize.Tokenizer
	tel       *telemetry.Provider
	logger    redact.Logger
}

// New builds a pipeline. Zero options fall back to GOMAXPROCS workers, the
// benchmark vocabulary and the basic tokenizer.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		workers:   opts.Workers,
		mode:      opts.Mode,
		tokenizer: opts.Tokenizer,
		tel:       opts.Telemetry,
		logger:    opts.Logger,
	}
	if p.workers <= 0 {
		p.workers = runtime.GOMAXPROCS(0)
	}
	if p.mode == "" {
		p.mode = labels.ModeBenchmark
	}
	if p.tokenizer == nil {
		p.tokenizer = tokenize.Basic{}
	}
	if p.logger == nil {
		p.logger = redact.Std()
	}
	return p
}

// FromConfig builds a pipeline from a validated config.
func FromConfig(cfg *config.Config, tel *telemetry.Provider) (*Pipeline, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	mode, err := labels.ParseMode(cfg.Pipeline.LabelMode)
	if err != nil {
		return nil, err
	}
	tok, err := tokenize.New(cfg.Tokenizer.Kind)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Workers:   cfg.Pipeline.Workers,
		Mode:      mode,
		Tokenizer: tok,
		Telemetry: tel,
	}), nil
}

// Process runs locate, resolve, label normalization and align for one
// document, in that order. The returned error equals Result.Err.
func (p *Pipeline) Process(ctx context.Context, doc Document) (Result, error) {
	start := time.Now()
	attrs := map[string]interface{}{"label_mode": string(p.mode)}
	ctx, sp := p.tel.StartSpan(ctx, "docuguard.process", attrs)

	res, stats := p.process(ctx, doc)
	stats.DurationMs = float64(time.Since(start).Microseconds()) / 1000
	stats.Failed = res.Err != nil
	stats.Attrs = attrs
	p.tel.RecordDocument(ctx, stats)
	p.tel.EndSpan(sp, res.Err, map[string]interface{}{
		"skipped":    stats.Skipped,
		"candidates": stats.Candidates,
		"accepted":   stats.Accepted,
	})

	if res.Err != nil {
		p.logger.Printf("pipeline: document %s failed: %s", res.DocumentID, redact.String(res.Err.Error()))
	}
	return res, res.Err
}

func (p *Pipeline) process(ctx context.Context, doc Document) (Result, telemetry.DocumentStats) {
	res := Result{DocumentID: doc.ID}
	if res.DocumentID == "" {
		res.DocumentID = uuid.NewString()
	}
	stats := telemetry.DocumentStats{Mentions: len(doc.Mentions), Skipped: countSkipped(doc.Mentions)}

	fail := func(err error) (Result, telemetry.DocumentStats) {
		res.Err = err
		return res, stats
	}

	_, sp := p.tel.StartSpan(ctx, "docuguard.prepare", nil)
	tokens, spans, text, err := p.prepare(doc)
	p.tel.EndSpan(sp, err, map[string]interface{}{"words": len(tokens)})
	if err != nil {
		return fail(err)
	}
	res.Text, res.Tokens, res.TokenSpans = text, tokens, spans

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	_, sp = p.tel.StartSpan(ctx, "docuguard.locate", nil)
	res.Candidates = span.Locate(text, doc.Mentions, span.WithLogger(p.logger))
	stats.Candidates = len(res.Candidates)
	p.tel.EndSpan(sp, nil, map[string]interface{}{"candidates": stats.Candidates})

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	_, sp = p.tel.StartSpan(ctx, "docuguard.resolve", nil)
	resolved, err := span.Resolve(res.Candidates)
	p.tel.EndSpan(sp, err, map[string]interface{}{"accepted": len(resolved)})
	if err != nil {
		return fail(fmt.Errorf("resolve: %w", err))
	}
	vocab := p.mode.Set()
	for i := range resolved {
		resolved[i].Label = p.mode.Normalize(resolved[i].Label)
		if !vocab.Contains(resolved[i].Label) {
			p.logger.Printf("pipeline: document %s: label %q is outside the %s vocabulary", res.DocumentID, resolved[i].Label, p.mode)
		}
	}
	res.Resolved = resolved
	stats.Accepted = len(resolved)

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	_, sp = p.tel.StartSpan(ctx, "docuguard.align", nil)
	tags, err := bio.Align(tokens, spans, resolved)
	p.tel.EndSpan(sp, err, nil)
	if err != nil {
		return fail(fmt.Errorf("align: %w", err))
	}
	res.Tags = tags
	return res, stats
}

// prepare settles the token stream and the text the mentions are searched
// in. Given tokens without spans, spans come from the whitespace flags; given
// no tokens, the configured tokenizer splits Text. Spans without tokens are
// rejected.
func (p *Pipeline) prepare(doc Document) ([]string, []bio.TokenSpan, string, error) {
	text := doc.Text
	if len(doc.Tokens) == 0 {
		if len(doc.TokenSpans) > 0 {
			return nil, nil, "", fmt.Errorf("%w: %d token spans without tokens", ErrInvalidDocument, len(doc.TokenSpans))
		}
		toks, err := p.tokenizer.Tokenize(text)
		if err != nil {
			return nil, nil, "", fmt.Errorf("tokenize: %w", err)
		}
		words, spans := tokenize.Split(toks)
		return words, spans, text, nil
	}

	spans := doc.TokenSpans
	if len(spans) == 0 {
		spans = tokenize.SpansFromWhitespace(doc.Tokens, doc.TrailingWhitespace)
	}
	if text == "" {
		text = tokenize.Rebuild(doc.Tokens, doc.TrailingWhitespace)
	}
	return doc.Tokens, spans, text, nil
}

func countSkipped(mentions []span.Mention) int {
	n := 0
	for _, m := range mentions {
		if !m.Valid() || !utf8.ValidString(m.Text) {
			n++
		}
	}
	return n
}
