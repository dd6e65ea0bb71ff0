// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inflect turns dictionary forms into surface forms for a requested
// set of verb features, in English and Korean.
//
// Both inflectors look the word up in an irregular table first and fall back
// to regular suffix rules. Negation, future tense and the perfect are built
// periphrastically in English ("will", "does not", "has eaten"); Korean uses
// the informal speech level (반말) that the pattern library is written in.
package inflect

import (
	"strings"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

// VerbForms are the principal parts that the regular rules get wrong.
// Empty fields fall back to the rules.
type VerbForms struct {
	Past       string
	Participle string
	Third      string
	Gerund     string
}

// English conjugates verbs and pluralizes nouns. The zero value is not
// usable; call NewEnglish.
type English struct {
	verbs    map[string]VerbForms
	doubling map[string]bool
	plurals  map[string]string
}

// NewEnglish returns an inflector over the built-in tables.
func NewEnglish() *English {
	return &English{
		verbs:    irregularVerbs,
		doubling: doublingVerbs,
		plurals:  irregularPlurals,
	}
}

// Inflect returns the verb phrase for lemma under features. Multi-word
// lemmas ("take a shower") inflect their first word. Empty features yield
// the bare lemma.
func (e *English) Inflect(lemma string, f types.VerbFeatures) string {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" || f.IsZero() {
		return lemma
	}
	head, rest := splitHead(lemma)
	head = strings.ToLower(head)
	r := f.Resolved()
	neg := r.Polarity == types.Negative

	var phrase string
	switch r.Aspect {
	case types.AspectProgressive:
		phrase = e.auxBe(r, neg) + " " + e.Gerund(head)
	case types.AspectPerfect:
		phrase = auxHave(r, neg) + " " + e.Participle(head)
	default:
		phrase = e.simple(head, r, neg)
	}
	return phrase + rest
}

func (e *English) simple(v string, r types.VerbFeatures, neg bool) string {
	if v == "be" {
		return e.auxBe(r, neg)
	}
	switch r.Tense {
	case types.TensePast:
		if neg {
			return "did not " + v
		}
		return e.Past(v)
	case types.TenseFuture:
		if neg {
			return "will not " + v
		}
		return "will " + v
	default:
		if neg {
			if r.ThirdSingular() {
				return "does not " + v
			}
			return "do not " + v
		}
		if r.ThirdSingular() {
			return e.Third(v)
		}
		return v
	}
}

// auxBe is the inflected form of "be" used alone or as the progressive
// auxiliary.
func (e *English) auxBe(r types.VerbFeatures, neg bool) string {
	not := ""
	if neg {
		not = " not"
	}
	singular := r.Number == types.Singular
	switch r.Tense {
	case types.TensePast:
		if singular && r.Person != types.SecondPerson {
			return "was" + not
		}
		return "were" + not
	case types.TenseFuture:
		return "will" + not + " be"
	default:
		switch {
		case singular && r.Person == types.FirstPerson:
			return "am" + not
		case r.ThirdSingular():
			return "is" + not
		default:
			return "are" + not
		}
	}
}

func auxHave(r types.VerbFeatures, neg bool) string {
	switch r.Tense {
	case types.TensePast:
		if neg {
			return "had not"
		}
		return "had"
	case types.TenseFuture:
		if neg {
			return "will not have"
		}
		return "will have"
	default:
		aux := "have"
		if r.ThirdSingular() {
			aux = "has"
		}
		if neg {
			return aux + " not"
		}
		return aux
	}
}

// Third returns the third-person singular present form.
func (e *English) Third(v string) string {
	if f, ok := e.verbs[v]; ok && f.Third != "" {
		return f.Third
	}
	switch {
	case endsWithAny(v, "s", "sh", "ch", "x", "z"):
		return v + "es"
	case consonantY(v):
		return v[:len(v)-1] + "ies"
	}
	return v + "s"
}

// Past returns the simple past form.
func (e *English) Past(v string) string {
	if f, ok := e.verbs[v]; ok && f.Past != "" {
		return f.Past
	}
	switch {
	case e.doubling[v]:
		return v + v[len(v)-1:] + "ed"
	case strings.HasSuffix(v, "e"):
		return v + "d"
	case consonantY(v):
		return v[:len(v)-1] + "ied"
	}
	return v + "ed"
}

// Participle returns the past participle.
func (e *English) Participle(v string) string {
	if f, ok := e.verbs[v]; ok {
		if f.Participle != "" {
			return f.Participle
		}
		if f.Past != "" {
			return f.Past
		}
	}
	return e.Past(v)
}

// Gerund returns the -ing form.
func (e *English) Gerund(v string) string {
	if f, ok := e.verbs[v]; ok && f.Gerund != "" {
		return f.Gerund
	}
	switch {
	case e.doubling[v]:
		return v + v[len(v)-1:] + "ing"
	case strings.HasSuffix(v, "ee"), len(v) <= 2:
		return v + "ing"
	case strings.HasSuffix(v, "ie"):
		return v[:len(v)-2] + "ying"
	case strings.HasSuffix(v, "e"):
		return v[:len(v)-1] + "ing"
	}
	return v + "ing"
}

// Pluralize returns the plural of noun. A non-empty override (the lexeme's
// irregular plural) wins. Multi-word nouns pluralize their last word.
func (e *English) Pluralize(noun, override string) string {
	if override != "" {
		return override
	}
	noun = strings.TrimSpace(noun)
	if noun == "" {
		return noun
	}
	prefix := ""
	if i := strings.LastIndexByte(noun, ' '); i >= 0 {
		prefix, noun = noun[:i+1], noun[i+1:]
	}
	lower := strings.ToLower(noun)
	if p, ok := e.plurals[lower]; ok {
		return prefix + matchCase(noun, p)
	}
	switch {
	case endsWithAny(lower, "s", "sh", "ch", "x", "z"):
		return prefix + noun + "es"
	case consonantY(lower):
		return prefix + noun[:len(noun)-1] + "ies"
	case strings.HasSuffix(lower, "fe") && !strings.HasSuffix(lower, "ffe"):
		return prefix + noun[:len(noun)-2] + "ves"
	case strings.HasSuffix(lower, "f") && !strings.HasSuffix(lower, "ff"):
		return prefix + noun[:len(noun)-1] + "ves"
	}
	return prefix + noun + "s"
}

// PluralizeLexeme pluralizes a nominal entry, leaving uncountable nouns as
// they are.
func (e *English) PluralizeLexeme(lx types.Lexeme) string {
	if lx.Countability == types.Uncountable {
		return lx.En
	}
	return e.Pluralize(lx.En, lx.IrregularPlural)
}

func splitHead(s string) (string, string) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func endsWithAny(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// consonantY reports a consonant followed by a final y ("study", not "play").
func consonantY(s string) bool {
	n := len(s)
	return n >= 2 && s[n-1] == 'y' && !isVowel(s[n-2])
}

func matchCase(orig, repl string) string {
	if orig != "" && orig[0] >= 'A' && orig[0] <= 'Z' && repl != "" {
		return strings.ToUpper(repl[:1]) + repl[1:]
	}
	return repl
}
