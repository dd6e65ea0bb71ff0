// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate rejects assembled candidates that are incomplete or
// semantically nonsensical.
//
// Three independent checks run in order: leftover placeholders in the
// English text, forbidden verb/object pairs, and places that are invalid
// for the pattern's activity. The validator never repairs a candidate.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/sentence-engine/internal/pattern"
	"github.com/pdiddy/sentence-engine/internal/semantic"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

var (
	// ErrUnfilled marks text that still contains a placeholder.
	ErrUnfilled = errors.New("unfilled placeholder")

	// ErrForbiddenPair marks a verb/object pair from the forbidden table.
	ErrForbiddenPair = errors.New("forbidden verb-object pair")

	// ErrPlaceAffinity marks a place that is invalid for the activity.
	ErrPlaceAffinity = errors.New("place not valid for activity")
)

var (
	placeholderPattern = regexp.MustCompile(`\[[A-Za-z_][A-Za-z0-9_]*\]|\{\{[^{}]*\}\}`)
	shoutingPattern    = regexp.MustCompile(`\b[A-Z][A-Z_]{2,}\b`)
)

// knownCaps are all-caps words that may appear legitimately in a sentence.
var knownCaps = map[string]bool{
	"ATM": true, "USA": true, "KTX": true, "CEO": true, "PDF": true, "OK": true,
}

// Bound is one slot binding as the validator sees it.
type Bound struct {
	Slot   types.SlotSpec
	Lexeme types.Lexeme
	// Surface is the inflected English form substituted into the text.
	Surface string
}

type placeRule struct {
	places map[string]string
}

// Validator holds the merged rule tables. It never changes after New and
// is safe for concurrent use.
type Validator struct {
	cls       *semantic.Classifier
	forbidden []types.ForbiddenCombination
	verbs     map[string]bool
	places    map[string]placeRule
}

// New merges tables into one authoritative rule set. cls resolves object
// categories; nil means category rules only match explicit categories.
func New(cls *semantic.Classifier, tables ...types.SemanticTables) *Validator {
	if cls == nil {
		cls = semantic.New()
	}
	v := &Validator{cls: cls, verbs: make(map[string]bool), places: make(map[string]placeRule)}
	for _, t := range tables {
		v.forbidden = append(v.forbidden, t.Forbidden...)
		for _, fc := range t.Forbidden {
			for _, verb := range fc.Verbs {
				v.verbs[strings.ToLower(verb)] = true
			}
		}
		for _, pr := range t.Places {
			act := strings.ToLower(strings.TrimSpace(pr.Activity))
			rule, ok := v.places[act]
			if !ok {
				rule = placeRule{places: make(map[string]string)}
				v.places[act] = rule
			}
			for _, p := range pr.Places {
				rule.places[semantic.Key(p)] = pr.Reason
			}
		}
	}
	return v
}

// Default returns a validator over the built-in tables.
func Default() *Validator {
	return New(semantic.Default(), DefaultTables)
}

// Validate runs all checks and returns the first failure, wrapping one of
// the package's sentinel errors.
func (v *Validator) Validate(schema types.PatternSchema, bound []Bound, text string) error {
	if err := CheckPlaceholders(text, bound); err != nil {
		return err
	}
	tmpl := pattern.Parse(schema.Surface)
	if err := v.CheckVerbObject(tmpl, bound); err != nil {
		return err
	}
	return v.CheckPlaces(bound, tmpl.LiteralText())
}

// IsValid reports whether Validate passes.
func (v *Validator) IsValid(schema types.PatternSchema, bound []Bound, text string) bool {
	return v.Validate(schema, bound, text) == nil
}

// CheckPlaceholders looks for [NAME] or {{name}} markers and for
// suspicious all-caps words that did not come from a bound entry.
func CheckPlaceholders(text string, bound []Bound) error {
	if m := placeholderPattern.FindString(text); m != "" {
		return fmt.Errorf("%w: %s", ErrUnfilled, m)
	}
	allowed := make(map[string]bool)
	for _, b := range bound {
		for _, w := range strings.Fields(b.Surface) {
			allowed[w] = true
		}
	}
	for _, w := range shoutingPattern.FindAllString(text, -1) {
		if !knownCaps[w] && !allowed[w] {
			return fmt.Errorf("%w: suspicious token %s", ErrUnfilled, w)
		}
	}
	return nil
}

// CheckVerbObject fails if a verb forms a forbidden pair with an object it
// governs. Walking tmpl in order, each verb (a bound VERB entry or a literal
// word listed in the forbidden table) governs the objects that follow it up
// to the next verb. Objects ahead of the first verb belong to the first
// verb. Bindings whose slot is not in tmpl are taken to follow it.
func (v *Validator) CheckVerbObject(tmpl pattern.Template, bound []Bound) error {
	for _, c := range v.clauses(tmpl, bound) {
		for _, fc := range v.forbidden {
			verb, ok := firstIn(fc.Verbs, c.verbs)
			if !ok {
				continue
			}
			for _, obj := range c.objects {
				if v.objectMatches(fc, obj) {
					return fmt.Errorf("%w: %s + %s (%s)", ErrForbiddenPair, verb, obj.En, fc.Reason)
				}
			}
		}
	}
	return nil
}

// clause is one verb with the objects it governs.
type clause struct {
	verbs   map[string]bool
	objects []types.Lexeme
}

func (v *Validator) clauses(tmpl pattern.Template, bound []Bound) []clause {
	bySlot := make(map[string]Bound, len(bound))
	for _, b := range bound {
		bySlot[strings.ToUpper(b.Slot.Name)] = b
	}

	var (
		out     []clause
		leading []types.Lexeme
		placed  = make(map[string]bool)
	)
	startVerb := func(ws []string) {
		c := clause{verbs: make(map[string]bool)}
		for _, w := range ws {
			c.verbs[w] = true
		}
		if len(out) == 0 {
			c.objects, leading = leading, nil
		}
		out = append(out, c)
	}
	addBound := func(b Bound) {
		if b.Lexeme.POS == types.POSVerb {
			startVerb(words(b.Lexeme.En + " " + b.Surface))
			return
		}
		if len(out) == 0 {
			leading = append(leading, b.Lexeme)
			return
		}
		last := &out[len(out)-1]
		last.objects = append(last.objects, b.Lexeme)
	}

	for _, tok := range tmpl {
		if tok.Kind == pattern.Literal {
			for _, w := range words(tok.Text) {
				if v.verbs[w] {
					startVerb([]string{w})
				}
			}
			continue
		}
		b, ok := bySlot[tok.Text]
		if !ok || placed[tok.Text] {
			continue
		}
		placed[tok.Text] = true
		addBound(b)
	}
	for _, b := range bound {
		if !placed[strings.ToUpper(b.Slot.Name)] {
			addBound(b)
		}
	}
	return out
}

func (v *Validator) objectMatches(fc types.ForbiddenCombination, obj types.Lexeme) bool {
	key := semantic.Key(obj.En)
	for _, o := range fc.Objects {
		if semantic.Key(o) == key {
			return true
		}
	}
	for _, c := range fc.Categories {
		if v.cls.LexemeHas(obj, c) {
			return true
		}
	}
	return false
}

// CheckPlaces fails if a place bound into a PLACE slot is disallowed for an
// activity named by a bound verb or by the pattern's literal text.
func (v *Validator) CheckPlaces(bound []Bound, literal string) error {
	if len(v.places) == 0 {
		return nil
	}
	activities := words(literal)
	for _, b := range bound {
		if b.Lexeme.POS == types.POSVerb {
			activities = append(activities, strings.ToLower(b.Lexeme.En))
		}
	}

	for _, b := range bound {
		if !b.Slot.Accepts(types.POSPlace) || b.Lexeme.POS != types.POSPlace {
			continue
		}
		place := semantic.Key(b.Lexeme.En)
		for _, act := range activities {
			rule, ok := v.places[act]
			if !ok {
				continue
			}
			if reason, bad := rule.places[place]; bad {
				return fmt.Errorf("%w: %s at %s (%s)", ErrPlaceAffinity, act, b.Lexeme.En, reason)
			}
		}
	}
	return nil
}

// words lower-cases s and splits it on anything that is not a letter or
// apostrophe.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r == '\'')
	})
}

func firstIn(candidates []string, set map[string]bool) (string, bool) {
	for _, c := range candidates {
		if set[strings.ToLower(c)] {
			return c, true
		}
	}
	return "", false
}
