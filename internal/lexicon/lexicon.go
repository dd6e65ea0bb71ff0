// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon wraps an ordered snapshot of vocabulary entries for one or
// more generation calls. Entries missing either language form, or carrying an
// unknown part of speech, are set aside at construction so that slot binding
// never sees them.
package lexicon

import (
	"math/rand/v2"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

// Lexicon is an immutable, ordered set of usable entries.
type Lexicon struct {
	entries  []types.Lexeme
	excluded []types.Lexeme
	byID     map[string]int
}

// New copies entries, keeping usable ones in input order. Duplicate ids
// keep their first occurrence.
func New(entries []types.Lexeme) *Lexicon {
	l := &Lexicon{byID: make(map[string]int, len(entries))}
	for _, lx := range entries {
		if !lx.Usable() {
			l.excluded = append(l.excluded, lx)
			continue
		}
		if _, dup := l.byID[lx.ID]; dup {
			l.excluded = append(l.excluded, lx)
			continue
		}
		l.byID[lx.ID] = len(l.entries)
		l.entries = append(l.entries, lx)
	}
	return l
}

// Entries returns the usable entries in order. Callers must not modify the
// returned slice.
func (l *Lexicon) Entries() []types.Lexeme {
	return l.entries
}

// Excluded returns the entries that were set aside.
func (l *Lexicon) Excluded() []types.Lexeme {
	return l.excluded
}

// Len returns the number of usable entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Get looks an entry up by id.
func (l *Lexicon) Get(id string) (types.Lexeme, bool) {
	i, ok := l.byID[id]
	if !ok {
		return types.Lexeme{}, false
	}
	return l.entries[i], true
}

// Shuffled returns a new Lexicon with the same entries in an order drawn
// from r. The receiver is not modified.
func (l *Lexicon) Shuffled(r *rand.Rand) *Lexicon {
	out := &Lexicon{
		entries:  make([]types.Lexeme, len(l.entries)),
		excluded: l.excluded,
		byID:     make(map[string]int, len(l.entries)),
	}
	copy(out.entries, l.entries)
	r.Shuffle(len(out.entries), func(i, j int) {
		out.entries[i], out.entries[j] = out.entries[j], out.entries[i]
	})
	for i, lx := range out.entries {
		out.byID[lx.ID] = i
	}
	return out
}
