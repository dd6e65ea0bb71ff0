// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package semantic maps words to coarse semantic categories by table lookup.
//
// Lookup is exact-string and case-insensitive; there is no stemming or fuzzy
// matching. A word may belong to several categories ("coffee" is both a
// beverage and something you can make/cook). The tables are configuration
// data: packs can extend them, and a Classifier never changes after New.
package semantic

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

// Set is a set of categories.
type Set map[types.Category]struct{}

// Has reports whether c is in the set.
func (s Set) Has(c types.Category) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the categories in lexical order.
func (s Set) Sorted() []types.Category {
	out := make([]types.Category, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Classifier answers category membership questions. It is safe for
// concurrent use.
type Classifier struct {
	members map[string]Set
}

// New builds a classifier from one or more category tables. Later tables
// add to earlier ones; nothing is removed.
func New(tables ...map[types.Category][]string) *Classifier {
	c := &Classifier{members: make(map[string]Set)}
	for _, table := range tables {
		for cat, words := range table {
			for _, w := range words {
				key := Key(w)
				if key == "" {
					continue
				}
				set, ok := c.members[key]
				if !ok {
					set = make(Set)
					c.members[key] = set
				}
				set[cat] = struct{}{}
			}
		}
	}
	return c
}

// Default returns a classifier over DefaultCategories.
func Default() *Classifier {
	return New(DefaultCategories)
}

// Key normalizes a word for lookup: trimmed and case-folded.
func Key(word string) string {
	return cases.Fold().String(strings.TrimSpace(word))
}

// Classify returns the categories of word. The result is a fresh set the
// caller may modify.
func (c *Classifier) Classify(word string) Set {
	out := make(Set)
	for cat := range c.members[Key(word)] {
		out[cat] = struct{}{}
	}
	return out
}

// Has reports whether word belongs to cat.
func (c *Classifier) Has(word string, cat types.Category) bool {
	return c.members[Key(word)].Has(cat)
}

// ClassifyLexeme unions the categories of the English form with the
// entry's explicit SemanticCategory. Korean forms are not consulted because
// short Korean nouns are too often homographs (차 is both tea and car).
func (c *Classifier) ClassifyLexeme(lx types.Lexeme) Set {
	out := c.Classify(lx.En)
	if lx.SemanticCategory != "" {
		out[lx.SemanticCategory] = struct{}{}
	}
	return out
}

// LexemeHas reports whether lx belongs to cat.
func (c *Classifier) LexemeHas(lx types.Lexeme, cat types.Category) bool {
	if lx.SemanticCategory == cat {
		return true
	}
	return c.Has(lx.En, cat)
}
