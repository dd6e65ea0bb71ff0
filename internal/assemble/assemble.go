// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble renders a pattern with its slot bindings into English
// and Korean text and normalizes the surface form.
package assemble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/sentence-engine/internal/hangul"
	"github.com/pdiddy/sentence-engine/internal/pattern"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// ErrMissingBinding marks a slot token with nothing to render. This covers
// required slots left unbound and placeholders with no slot declaration.
var ErrMissingBinding = errors.New("missing slot binding")

// Binding is the (already inflected) surface of one slot in both languages.
type Binding struct {
	Lexeme types.Lexeme
	En     string
	Ko     string
}

// Sentence is an assembled, naturalized pair.
type Sentence struct {
	En string
	Ko string
}

// Assembler renders templates. It holds only read-only tables and is safe
// for concurrent use.
type Assembler struct {
	idioms []idiom
	pairs  []string
}

// New returns an assembler with the built-in idiom fixups.
func New() *Assembler {
	return &Assembler{idioms: defaultIdioms, pairs: hangul.ParticlePairs()}
}

// Assemble substitutes bindings (keyed by upper-case slot name) into both
// surfaces and naturalizes the result. Optional slots without a binding
// render as nothing.
func (a *Assembler) Assemble(schema types.PatternSchema, bindings map[string]Binding) (Sentence, error) {
	optional := make(map[string]bool)
	for _, s := range schema.Slots {
		if !s.IsRequired() {
			optional[strings.ToUpper(s.Name)] = true
		}
	}

	en, err := a.render(pattern.Parse(schema.Surface), bindings, optional, false)
	if err != nil {
		return Sentence{}, fmt.Errorf("surface: %w", err)
	}
	ko, err := a.render(pattern.Parse(schema.KoSurface), bindings, optional, true)
	if err != nil {
		return Sentence{}, fmt.Errorf("ko_surface: %w", err)
	}
	return Sentence{En: a.NaturalizeEnglish(en), Ko: NaturalizeKorean(ko)}, nil
}

func (a *Assembler) render(tmpl pattern.Template, bindings map[string]Binding, optional map[string]bool, korean bool) (string, error) {
	var (
		b         strings.Builder
		afterSlot bool
		prev      string
	)
	for _, tok := range tmpl {
		if tok.Kind == pattern.Slot {
			bnd, ok := bindings[tok.Text]
			if !ok && !optional[tok.Text] {
				return "", fmt.Errorf("%w: [%s]", ErrMissingBinding, tok.Text)
			}
			prev = bnd.En
			if korean {
				prev = bnd.Ko
			}
			b.WriteString(prev)
			afterSlot = true
			continue
		}

		text := tok.Text
		if korean && afterSlot {
			text = a.resolveParticle(prev, text)
		}
		b.WriteString(text)
		afterSlot = false
	}
	return b.String(), nil
}

// resolveParticle replaces a written pair such as "을/를" at the start of
// text with the form that fits word. An empty word drops the particle.
func (a *Assembler) resolveParticle(word, text string) string {
	for _, pair := range a.pairs {
		rest, ok := strings.CutPrefix(text, pair)
		if !ok {
			continue
		}
		if strings.TrimSpace(word) == "" {
			return rest
		}
		return hangul.Particle(word, pair) + rest
	}
	return text
}
