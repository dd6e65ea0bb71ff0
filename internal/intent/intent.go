// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent maps free-text learner input to category tags and
// extracts the keywords used for confidence scoring.
//
// Classification is a keyword table lookup. English keywords must match a
// whole token. Korean keywords of two or more syllables match anywhere in
// the text because Korean attaches particles and endings directly to the
// word (병원에, 버스를). A one-syllable keyword is too ambiguous for that
// (역 in 역사, 길 in 길어): it must be a whole word once a particle is
// stripped, or end a compound (지하철역). A keyword written with a trailing
// hyphen is a verb stem and matches the start of a word (먹- in 먹고).
package intent

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/sentence-engine/internal/hangul"
)

// Rule maps a set of keywords to one category tag.
type Rule struct {
	Tag      string   `json:"tag" yaml:"tag"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Classifier holds keyword rules in priority order. It is safe for
// concurrent use.
type Classifier struct {
	rules []compiledRule
}

type compiledRule struct {
	tag     string
	english map[string]bool
	korean  []string
	short   []string
	stems   []string
}

// New compiles rules. Rules with an empty tag are ignored; repeated tags
// merge their keywords.
func New(rules ...Rule) *Classifier {
	c := &Classifier{}
	index := make(map[string]int)
	for _, r := range rules {
		tag := strings.TrimSpace(r.Tag)
		if tag == "" {
			continue
		}
		i, ok := index[tag]
		if !ok {
			i = len(c.rules)
			index[tag] = i
			c.rules = append(c.rules, compiledRule{tag: tag, english: make(map[string]bool)})
		}
		for _, kw := range r.Keywords {
			kw = normalize(strings.TrimSpace(kw))
			stem, isStem := strings.CutSuffix(kw, "-")
			switch {
			case kw == "" || stem == "":
			case isStem && containsHangul(stem):
				c.rules[i].stems = append(c.rules[i].stems, stem)
			case containsHangul(kw) && utf8.RuneCountInString(kw) == 1:
				c.rules[i].short = append(c.rules[i].short, kw)
			case containsHangul(kw):
				c.rules[i].korean = append(c.rules[i].korean, kw)
			default:
				c.rules[i].english[kw] = true
			}
		}
	}
	return c
}

// Default returns a classifier over DefaultRules.
func Default() *Classifier {
	return New(DefaultRules...)
}

// Classify returns the tags whose keywords occur in text, most hits first.
// Ties keep rule order. Text with no hits yields nil.
func (c *Classifier) Classify(text string) []string {
	text = normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	tokens := make(map[string]bool)
	var words []string
	for _, tok := range tokenize(text) {
		tokens[tok] = true
		if containsHangul(tok) {
			words = append(words, tok)
		}
	}

	type hit struct {
		tag   string
		count int
	}
	var hits []hit
	for _, r := range c.rules {
		n := 0
		for tok := range tokens {
			if r.english[tok] {
				n++
			}
		}
		for _, kw := range r.korean {
			if strings.Contains(text, kw) {
				n++
			}
		}
		for _, kw := range r.short {
			if anyWord(words, func(w string) bool { return strings.HasSuffix(stripParticle(w), kw) }) {
				n++
			}
		}
		for _, kw := range r.stems {
			if anyWord(words, func(w string) bool { return strings.HasPrefix(w, kw) }) {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, hit{r.tag, n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	var tags []string
	for _, h := range hits {
		tags = append(tags, h.tag)
	}
	return tags
}

// Keywords returns the distinct content words of text in order of first
// appearance: NFC-normalized, case-folded, stop words removed and common
// Korean particles stripped from the end of each word.
func Keywords(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokenize(normalize(text)) {
		if containsHangul(tok) {
			tok = stripParticle(tok)
		}
		if tok == "" || stopWords[tok] || seen[tok] {
			continue
		}
		if !containsHangul(tok) && len(tok) < 2 {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

func anyWord(words []string, match func(string) bool) bool {
	for _, w := range words {
		if match(w) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func containsHangul(s string) bool {
	for _, r := range s {
		if hangul.IsHangul(r) {
			return true
		}
	}
	return false
}

// stripParticle removes one trailing particle, keeping at least one
// syllable of the word. Particles that alternate on the final consonant are
// only stripped when they agree with it, so 사과 stays whole.
func stripParticle(tok string) string {
	for _, p := range koreanParticles {
		rest, ok := strings.CutSuffix(tok, p)
		if !ok || rest == "" {
			continue
		}
		if want, alternating := afterBatchim[p]; alternating && hangul.HasBatchim(rest) != want {
			continue
		}
		return rest
	}
	return tok
}
