// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Level is the difficulty band of a pattern.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Tense, Aspect, Polarity, Person and Number are the axes of VerbFeatures.
// The empty string means "not requested".
type (
	Tense    string
	Aspect   string
	Polarity string
	Person   string
	Number   string
)

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"

	AspectSimple      Aspect = "simple"
	AspectProgressive Aspect = "progressive"
	AspectPerfect     Aspect = "perfect"

	Affirmative Polarity = "affirmative"
	Negative    Polarity = "negative"

	FirstPerson  Person = "first"
	SecondPerson Person = "second"
	ThirdPerson  Person = "third"

	Singular Number = "singular"
	Plural   Number = "plural"
)

// VerbFeatures is a (possibly partial) request for a verb form.
type VerbFeatures struct {
	Tense    Tense    `json:"tense,omitempty" yaml:"tense,omitempty"`
	Aspect   Aspect   `json:"aspect,omitempty" yaml:"aspect,omitempty"`
	Polarity Polarity `json:"polarity,omitempty" yaml:"polarity,omitempty"`
	Person   Person   `json:"person,omitempty" yaml:"person,omitempty"`
	Number   Number   `json:"number,omitempty" yaml:"number,omitempty"`
}

// IsZero reports whether no feature is requested.
func (f VerbFeatures) IsZero() bool {
	return f == VerbFeatures{}
}

// Resolved fills unset axes with the unmarked value: present, simple,
// affirmative, first person, singular.
func (f VerbFeatures) Resolved() VerbFeatures {
	if f.Tense == "" {
		f.Tense = TensePresent
	}
	if f.Aspect == "" {
		f.Aspect = AspectSimple
	}
	if f.Polarity == "" {
		f.Polarity = Affirmative
	}
	if f.Person == "" {
		f.Person = FirstPerson
	}
	if f.Number == "" {
		f.Number = Singular
	}
	return f
}

// ThirdSingular reports whether the resolved features select the -s form.
func (f VerbFeatures) ThirdSingular() bool {
	r := f.Resolved()
	return r.Person == ThirdPerson && r.Number == Singular
}

// SlotSpec describes one typed placeholder of a pattern.
type SlotSpec struct {
	// Name is the placeholder key, written [NAME] in the surface strings.
	Name string `json:"name" yaml:"name"`

	// Accept lists the POS tags a bound lexeme may have.
	Accept []POS `json:"accept" yaml:"accept"`

	// Required defaults to true when omitted.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`

	// SemanticConstraint restricts candidates to a category.
	SemanticConstraint Category `json:"semantic_constraint,omitempty" yaml:"semantic_constraint,omitempty"`

	// Morph is applied when the bound lexeme is a verb.
	Morph VerbFeatures `json:"morph,omitempty" yaml:"morph,omitempty"`

	// Number requests the plural English form when the bound lexeme is nominal.
	Number Number `json:"number,omitempty" yaml:"number,omitempty"`
}

// IsRequired reports whether the slot must be bound.
func (s SlotSpec) IsRequired() bool {
	return s.Required == nil || *s.Required
}

// Accepts reports whether pos is allowed in the slot.
func (s SlotSpec) Accepts(pos POS) bool {
	for _, p := range s.Accept {
		if p == pos {
			return true
		}
	}
	return false
}

// PatternSchema is a bilingual sentence template with typed slots.
type PatternSchema struct {
	ID        string     `json:"id" yaml:"id"`
	Category  string     `json:"category" yaml:"category"`
	Level     Level      `json:"level,omitempty" yaml:"level,omitempty"`
	Surface   string     `json:"surface" yaml:"surface"`
	KoSurface string     `json:"ko_surface" yaml:"ko_surface"`
	Slots     []SlotSpec `json:"slots" yaml:"slots"`
}

// Slot returns the spec named name.
func (p PatternSchema) Slot(name string) (SlotSpec, bool) {
	for _, s := range p.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return SlotSpec{}, false
}
