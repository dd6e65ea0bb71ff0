// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slot picks vocabulary entries for pattern slots.
//
// Selection is deterministic: the first eligible entry in lexicon order
// wins. Variety comes from the caller shuffling the lexicon with a seeded
// source, or from trying the next candidate after a rejected combination.
package slot

import (
	"github.com/pdiddy/sentence-engine/internal/lexicon"
	"github.com/pdiddy/sentence-engine/internal/semantic"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// Resolver filters a lexicon by part of speech, semantic constraint and
// already-used ids. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	lex    *lexicon.Lexicon
	cls    *semantic.Classifier
	prefer []string
}

// New returns a resolver over lex. cls may be nil, in which case semantic
// constraints only match entries with an explicit SemanticCategory.
func New(lex *lexicon.Lexicon, cls *semantic.Classifier) *Resolver {
	if cls == nil {
		cls = semantic.New()
	}
	return &Resolver{lex: lex, cls: cls}
}

// Prefer returns a resolver that orders entries carrying any of tags ahead
// of the rest, keeping lexicon order within each group.
func (r *Resolver) Prefer(tags ...string) *Resolver {
	out := *r
	out.prefer = tags
	return &out
}

// Candidates returns every eligible entry for spec, skipping ids in used.
func (r *Resolver) Candidates(spec types.SlotSpec, used map[string]bool) []types.Lexeme {
	var preferred, rest []types.Lexeme
	for _, lx := range r.lex.Entries() {
		if used[lx.ID] || !r.eligible(spec, lx) {
			continue
		}
		if r.preferred(lx) {
			preferred = append(preferred, lx)
		} else {
			rest = append(rest, lx)
		}
	}
	return append(preferred, rest...)
}

// Pick returns the first eligible entry. ok is false when the slot cannot
// be filled.
func (r *Resolver) Pick(spec types.SlotSpec, used map[string]bool) (types.Lexeme, bool) {
	if len(r.prefer) > 0 {
		c := r.Candidates(spec, used)
		if len(c) == 0 {
			return types.Lexeme{}, false
		}
		return c[0], true
	}
	for _, lx := range r.lex.Entries() {
		if !used[lx.ID] && r.eligible(spec, lx) {
			return lx, true
		}
	}
	return types.Lexeme{}, false
}

// HasCandidate reports whether at least one entry could fill spec.
func (r *Resolver) HasCandidate(spec types.SlotSpec) bool {
	_, ok := r.Pick(spec, nil)
	return ok
}

func (r *Resolver) eligible(spec types.SlotSpec, lx types.Lexeme) bool {
	if !spec.Accepts(lx.POS) {
		return false
	}
	if spec.SemanticConstraint != "" && !r.cls.LexemeHas(lx, spec.SemanticConstraint) {
		return false
	}
	return true
}

func (r *Resolver) preferred(lx types.Lexeme) bool {
	for _, t := range r.prefer {
		if lx.HasTag(t) {
			return true
		}
	}
	return false
}
