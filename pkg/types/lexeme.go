// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the sentence engine:
// vocabulary entries (Lexeme), sentence templates (PatternSchema, SlotSpec),
// morphological feature requests (VerbFeatures), generation parameters and
// results, the static rule tables, and configuration.
package types

import "strings"

// POS is a closed part-of-speech tag carried by every Lexeme.
type POS string

const (
	POSNoun   POS = "NOUN"
	POSVerb   POS = "VERB"
	POSPlace  POS = "PLACE"
	POSPerson POS = "PERSON"
	POSItem   POS = "ITEM"
	POSTime   POS = "TIME"
	POSPron   POS = "PRON"
)

// AllPOS lists every valid part-of-speech tag in declaration order.
var AllPOS = []POS{POSNoun, POSVerb, POSPlace, POSPerson, POSItem, POSTime, POSPron}

// Valid reports whether p is one of the closed POS tags.
func (p POS) Valid() bool {
	for _, v := range AllPOS {
		if p == v {
			return true
		}
	}
	return false
}

// Nominal reports whether p fills object-like positions (anything that is
// not a verb or pronoun).
func (p POS) Nominal() bool {
	return p != POSVerb && p != POSPron && p.Valid()
}

// Countability marks whether a noun takes a plural form.
type Countability string

const (
	Countable   Countability = "countable"
	Uncountable Countability = "uncountable"
)

// Category is a coarse semantic class used to reject nonsensical combinations.
type Category string

const (
	CatBeverage      Category = "BEVERAGE"
	CatFood          Category = "FOOD"
	CatCookable      Category = "COOKABLE"
	CatNonConsumable Category = "NON_CONSUMABLE"
	CatTool          Category = "TOOL"
	CatBodyPart      Category = "BODY_PART"
)

// Lexeme is a single bilingual vocabulary entry.
type Lexeme struct {
	// ID is the stable identifier assigned by the vocabulary store.
	ID string `json:"id" yaml:"id"`

	// En is the English dictionary form (lemma for verbs, singular for nouns).
	En string `json:"en" yaml:"en"`

	// Ko is the Korean dictionary form (verbs end in 다).
	Ko string `json:"ko" yaml:"ko"`

	// POS is the part-of-speech tag.
	POS POS `json:"pos" yaml:"pos"`

	// Tags are domain labels such as daily, directions, school, business.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// SemanticCategory is an optional explicit category that supplements the
	// classifier tables.
	SemanticCategory Category `json:"semantic_category,omitempty" yaml:"semantic_category,omitempty"`

	// Countability defaults to countable when empty.
	Countability Countability `json:"countability,omitempty" yaml:"countability,omitempty"`

	// IrregularPlural overrides the regular English plural rules.
	IrregularPlural string `json:"irregular_plural,omitempty" yaml:"irregular_plural,omitempty"`
}

// Usable reports whether the entry can take part in generation: both
// language forms must be non-empty and the POS must be known.
func (l Lexeme) Usable() bool {
	return l.ID != "" &&
		strings.TrimSpace(l.En) != "" &&
		strings.TrimSpace(l.Ko) != "" &&
		l.POS.Valid()
}

// HasTag reports whether the lexeme carries tag.
func (l Lexeme) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
