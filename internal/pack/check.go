// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"fmt"
	"sort"

	"github.com/pdiddy/sentence-engine/internal/lexicon"
	"github.com/pdiddy/sentence-engine/internal/pattern"
	"github.com/pdiddy/sentence-engine/internal/semantic"
	"github.com/pdiddy/sentence-engine/internal/slot"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// Warning is a data-quality finding. Warnings never block loading.
type Warning struct {
	Pack    string `json:"pack" yaml:"pack"`
	Item    string `json:"item" yaml:"item"`
	Message string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Pack, w.Item, w.Message)
}

// Check reviews packs as they would be applied together: pattern
// placeholder mismatches, unusable lexemes, ids repeated across packs,
// unknown semantic categories and required slots that no lexeme can fill.
func Check(packs ...*Pack) []Warning {
	var out []Warning
	lexemeOwner := make(map[string]string)
	patternOwner := make(map[string]string)
	known := knownCategories(packs)

	for _, p := range packs {
		for i, lx := range p.Lexemes {
			item := lx.ID
			if item == "" {
				item = fmt.Sprintf("lexeme #%d", i+1)
			}
			if !lx.Usable() {
				out = append(out, Warning{p.Name, item, "lexeme is missing id, en, ko or a known pos; it will be excluded"})
			}
			if lx.ID != "" {
				if owner, dup := lexemeOwner[lx.ID]; dup {
					out = append(out, Warning{p.Name, item, "lexeme id already defined in " + owner})
				} else {
					lexemeOwner[lx.ID] = p.Name
				}
			}
			if lx.SemanticCategory != "" && !known[lx.SemanticCategory] {
				out = append(out, Warning{p.Name, item, fmt.Sprintf("unknown semantic category %q", lx.SemanticCategory)})
			}
		}

		for _, schema := range p.Patterns {
			for _, w := range pattern.Check(schema) {
				out = append(out, Warning{p.Name, w.SchemaID, w.Message})
			}
			if schema.ID == "" {
				continue
			}
			if owner, dup := patternOwner[schema.ID]; dup {
				out = append(out, Warning{p.Name, schema.ID, "pattern id already defined in " + owner})
			} else {
				patternOwner[schema.ID] = p.Name
			}
			for _, s := range schema.Slots {
				if s.SemanticConstraint != "" && !known[s.SemanticConstraint] {
					out = append(out, Warning{p.Name, schema.ID, fmt.Sprintf("slot %s uses unknown semantic category %q", s.Name, s.SemanticConstraint)})
				}
			}
		}
	}

	return append(out, unfillable(packs)...)
}

// unfillable reports required slots with no candidate in the merged lexicon.
func unfillable(packs []*Pack) []Warning {
	var (
		entries    []types.Lexeme
		categories = []map[types.Category][]string{semantic.DefaultCategories}
	)
	for _, p := range packs {
		entries = append(entries, p.Lexemes...)
		if len(p.Semantics.Categories) > 0 {
			categories = append(categories, p.Semantics.Categories)
		}
	}
	res := slot.New(lexicon.New(entries), semantic.New(categories...))

	var out []Warning
	for _, p := range packs {
		for _, schema := range p.Patterns {
			for _, s := range schema.Slots {
				if s.IsRequired() && len(s.Accept) > 0 && !res.HasCandidate(s) {
					out = append(out, Warning{p.Name, schema.ID, fmt.Sprintf("required slot %s has no candidate lexeme", s.Name)})
				}
			}
		}
	}
	return out
}

func knownCategories(packs []*Pack) map[types.Category]bool {
	known := make(map[types.Category]bool)
	for c := range semantic.DefaultCategories {
		known[c] = true
	}
	for _, p := range packs {
		for c := range p.Semantics.Categories {
			known[c] = true
		}
		for _, fc := range p.Semantics.Forbidden {
			for _, c := range fc.Categories {
				known[c] = true
			}
		}
	}
	return known
}

// Summary counts the contents of a pack for listings.
type Summary struct {
	Name     string         `json:"name" yaml:"name"`
	Source   string         `json:"source" yaml:"source"`
	Lexemes  int            `json:"lexemes" yaml:"lexemes"`
	Patterns int            `json:"patterns" yaml:"patterns"`
	ByPOS    map[string]int `json:"by_pos" yaml:"by_pos"`
	Levels   []string       `json:"levels" yaml:"levels"`
}

// Summarize returns counts for p.
func Summarize(p *Pack) Summary {
	s := Summary{
		Name:     p.Name,
		Source:   p.Source,
		Lexemes:  len(p.Lexemes),
		Patterns: len(p.Patterns),
		ByPOS:    make(map[string]int),
	}
	levels := make(map[string]bool)
	for _, lx := range p.Lexemes {
		s.ByPOS[string(lx.POS)]++
	}
	for _, schema := range p.Patterns {
		if schema.Level != "" && !levels[string(schema.Level)] {
			levels[string(schema.Level)] = true
			s.Levels = append(s.Levels, string(schema.Level))
		}
	}
	sort.Strings(s.Levels)
	return s
}
