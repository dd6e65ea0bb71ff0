// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score ranks generated candidates. The score is a heuristic for
// ordering results, not a measure of correctness.
package score

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/sentence-engine/internal/intent"
)

// Weights of the score components. Base plus every maximum sums to 1.
const (
	Base             = 0.5
	KeywordWeight    = 0.25
	CategoryWeight   = 0.15
	CompletionWeight = 0.1
)

// Candidate is the part of a generated sentence the scorer looks at.
type Candidate struct {
	En       string
	Ko       string
	Category string
	// Filled and Slots give the slot-fill ratio. Slots == 0 counts as complete.
	Filled int
	Slots  int
}

// Context is what the caller asked for.
type Context struct {
	// Keywords come from intent.Keywords of the user's input.
	Keywords []string
	// Tags are the category tags the request resolved to.
	Tags []string
}

// NewContext derives keywords from free-text input.
func NewContext(input string, tags []string) Context {
	return Context{Keywords: intent.Keywords(input), Tags: tags}
}

// Score returns the confidence of c under ctx, clamped to [0, 1].
func Score(c Candidate, ctx Context) float64 {
	s := Base + KeywordWeight*Overlap(c, ctx.Keywords)
	for _, t := range ctx.Tags {
		if c.Category != "" && strings.EqualFold(t, c.Category) {
			s += CategoryWeight
			break
		}
	}
	if c.Slots <= 0 {
		s += CompletionWeight
	} else {
		s += CompletionWeight * float64(min(c.Filled, c.Slots)) / float64(c.Slots)
	}
	return max(0, min(1, s))
}

// Overlap returns the share of keywords found in the candidate. English
// keywords must match a whole word of En; keywords in Hangul may occur
// anywhere in Ko.
func Overlap(c Candidate, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	fold := cases.Fold()
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(fold.String(c.En), notWordRune) {
		words[w] = true
	}
	ko := fold.String(c.Ko)

	n := 0
	for _, kw := range keywords {
		if words[kw] || (!isASCII(kw) && strings.Contains(ko, kw)) {
			n++
		}
	}
	return float64(n) / float64(len(keywords))
}

func notWordRune(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'' || r > 0x7f)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
