// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate is the orchestrator that turns a lexicon snapshot and a
// pattern registry into ranked bilingual sentences.
//
// A call selects patterns (by id, by category tag, or by tags inferred from
// free-text input), binds each slot to a vocabulary entry, inflects and
// assembles both languages, validates the result and scores it. Rejections
// are expected and never abort the call; they are returned as trace entries
// and logged at debug level.
package generate

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/sentence-engine/internal/assemble"
	"github.com/pdiddy/sentence-engine/internal/hangul"
	"github.com/pdiddy/sentence-engine/internal/inflect"
	"github.com/pdiddy/sentence-engine/internal/intent"
	"github.com/pdiddy/sentence-engine/internal/lexicon"
	"github.com/pdiddy/sentence-engine/internal/registry"
	"github.com/pdiddy/sentence-engine/internal/score"
	"github.com/pdiddy/sentence-engine/internal/semantic"
	"github.com/pdiddy/sentence-engine/internal/slot"
	"github.com/pdiddy/sentence-engine/internal/validate"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// ErrNotInitialized is returned when Generate is called without a lexicon
// or registry.
var ErrNotInitialized = errors.New("generate: lexicon and registry must be initialized")

// Engine runs generation calls. It holds only read-only collaborators and
// may be shared by concurrent callers.
type Engine struct {
	cfg     types.EngineConfig
	deny    map[string]bool
	log     *zap.Logger
	cls     *semantic.Classifier
	val     *validate.Validator
	intents *intent.Classifier
	en      *inflect.English
	ko      *inflect.Korean
	asm     *assemble.Assembler
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClassifier sets the semantic classifier used for slot constraints.
func WithClassifier(c *semantic.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.cls = c
		}
	}
}

// WithValidator sets the compatibility validator.
func WithValidator(v *validate.Validator) Option {
	return func(e *Engine) {
		if v != nil {
			e.val = v
		}
	}
}

// WithIntents sets the free-text intent classifier.
func WithIntents(c *intent.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.intents = c
		}
	}
}

// New returns an engine. Zero config values take the package defaults.
func New(cfg types.EngineConfig, opts ...Option) *Engine {
	cfg = cfg.WithDefaults()
	e := &Engine{
		cfg:     cfg,
		deny:    make(map[string]bool, len(cfg.Denylist)),
		log:     zap.NewNop(),
		cls:     semantic.Default(),
		intents: intent.Default(),
		en:      inflect.NewEnglish(),
		ko:      inflect.NewKorean(),
		asm:     assemble.New(),
	}
	for _, id := range cfg.Denylist {
		e.deny[id] = true
	}
	for _, o := range opts {
		o(e)
	}
	if e.val == nil {
		e.val = validate.New(e.cls, validate.DefaultTables)
	}
	return e
}

// Result is the outcome of one call.
type Result struct {
	// Sentences are sorted by confidence, highest first.
	Sentences []types.GeneratedSentence

	// Tags is the category tag set the request resolved to.
	Tags []string

	// Trace lists every rejected pattern or candidate.
	Trace []types.TraceEntry
}

// Generate returns up to the requested number of sentences. An empty result
// means the vocabulary cannot satisfy the request; it is not an error.
func (e *Engine) Generate(lex *lexicon.Lexicon, reg *registry.Registry, p types.GenerateParams) ([]types.GeneratedSentence, error) {
	res, err := e.Run(lex, reg, p)
	return res.Sentences, err
}

// Run is Generate with the resolved tags and the rejection trace.
func (e *Engine) Run(lex *lexicon.Lexicon, reg *registry.Registry, p types.GenerateParams) (Result, error) {
	if lex == nil || reg == nil {
		return Result{}, ErrNotInitialized
	}
	limit := p.Limit
	if limit <= 0 {
		limit = e.cfg.Limit
	}

	r := &run{e: e}
	tags, inferred := e.resolveTags(p)

	if p.Rand != nil {
		lex = lex.Shuffled(p.Rand)
	}
	res := slot.New(lex, e.cls)
	if len(tags) > 0 {
		res = res.Prefer(tags...)
	}
	ctx := score.NewContext(p.UserInput, tags)

	seen := make(map[string]bool)
	var out []types.GeneratedSentence
	for _, schema := range r.selectSchemas(reg.All(), p.SchemaIDs, tags, inferred) {
		if len(out) >= limit {
			break
		}
		if !r.precheck(schema, res) {
			continue
		}
		for _, s := range r.expand(schema, res, min(e.cfg.MaxPerSchema, limit-len(out)), seen) {
			s.Confidence = score.Score(score.Candidate{
				En:       s.Text,
				Ko:       s.Korean,
				Category: s.Category,
				Filled:   len(s.UsedLexemeIDs),
				Slots:    len(schema.Slots),
			}, ctx)
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	e.log.Debug("generation finished",
		zap.Strings("tags", tags),
		zap.Int("sentences", len(out)),
		zap.Int("rejections", len(r.trace)))
	return Result{Sentences: out, Tags: tags, Trace: r.trace}, nil
}

// resolveTags returns the request's tags and whether they were inferred
// from free text.
func (e *Engine) resolveTags(p types.GenerateParams) ([]string, bool) {
	if len(p.Tags) > 0 {
		return p.Tags, false
	}
	if strings.TrimSpace(p.UserInput) == "" {
		return nil, false
	}
	return e.intents.Classify(p.UserInput), true
}

// run carries the per-call state.
type run struct {
	e     *Engine
	trace []types.TraceEntry
}

func (r *run) reject(schemaID string, stage types.TraceStage, reason, detail string) {
	r.trace = append(r.trace, types.TraceEntry{SchemaID: schemaID, Stage: stage, Reason: reason, Detail: detail})
	r.e.log.Debug("candidate rejected",
		zap.String("schema", schemaID),
		zap.String("stage", string(stage)),
		zap.String("reason", reason),
		zap.String("detail", detail))
}

// selectSchemas filters the registry snapshot in registry order. Explicit
// ids win over tags. Tags inferred from free text that match no pattern
// fall back to the full registry; explicit tags do not.
func (r *run) selectSchemas(all []types.PatternSchema, ids, tags []string, inferred bool) []types.PatternSchema {
	var picked []types.PatternSchema
	switch {
	case len(ids) > 0:
		want := make(map[string]bool, len(ids))
		for _, id := range ids {
			want[id] = true
		}
		for _, s := range all {
			if want[s.ID] {
				picked = append(picked, s)
				delete(want, s.ID)
			}
		}
		for _, id := range ids {
			if want[id] {
				r.reject(id, types.StageSelect, "unknown pattern id", "")
				delete(want, id)
			}
		}
	case len(tags) > 0:
		for _, s := range all {
			if hasTag(tags, s.Category) {
				picked = append(picked, s)
			}
		}
		if len(picked) == 0 && inferred {
			picked = all
		}
	default:
		picked = all
	}

	var out []types.PatternSchema
	for _, s := range picked {
		switch {
		case r.e.deny[s.ID]:
			r.reject(s.ID, types.StageSelect, "denylisted", "")
		case !hasHangul(s.KoSurface):
			r.reject(s.ID, types.StageSelect, "no Korean surface", s.KoSurface)
		default:
			out = append(out, s)
		}
	}
	return out
}

// precheck skips a pattern when a required slot has no candidate at all.
func (r *run) precheck(schema types.PatternSchema, res *slot.Resolver) bool {
	for _, spec := range schema.Slots {
		if spec.IsRequired() && !res.HasCandidate(spec) {
			r.reject(schema.ID, types.StagePrecheck, "no candidate for required slot", spec.Name)
			return false
		}
	}
	return true
}

func hasTag(tags []string, category string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, category) {
			return true
		}
	}
	return false
}

func hasHangul(s string) bool {
	for _, c := range s {
		if hangul.IsHangul(c) {
			return true
		}
	}
	return false
}
