// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ForbiddenCombination lists verb forms that must never co-occur with the
// listed objects. Objects match either by surface form or by category.
type ForbiddenCombination struct {
	Verbs      []string   `json:"verbs" yaml:"verbs"`
	Objects    []string   `json:"objects,omitempty" yaml:"objects,omitempty"`
	Categories []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	Reason     string     `json:"reason" yaml:"reason"`
}

// PlaceRule marks places where an activity is not a valid choice.
// Activity matches a bound verb lemma or a word of the pattern surface.
type PlaceRule struct {
	Activity string   `json:"activity" yaml:"activity"`
	Places   []string `json:"places" yaml:"places"`
	Reason   string   `json:"reason" yaml:"reason"`
}

// SemanticTables is the reference data shared by the classifier and the
// validator. Packs may extend it.
type SemanticTables struct {
	Categories map[Category][]string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Forbidden  []ForbiddenCombination `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
	Places     []PlaceRule            `json:"places,omitempty" yaml:"places,omitempty"`
}
