// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math/rand/v2"

// GeneratedSentence is one surviving candidate of a generation call.
type GeneratedSentence struct {
	// Text is the final English sentence.
	Text string `json:"text" yaml:"text"`

	// Korean is the final Korean sentence.
	Korean string `json:"korean" yaml:"korean"`

	// UsedLexemeIDs lists the bound lexemes in slot order.
	UsedLexemeIDs []string `json:"used_lexeme_ids" yaml:"used_lexeme_ids"`

	// SchemaID identifies the pattern that produced the sentence.
	SchemaID string `json:"schema_id" yaml:"schema_id"`

	// Category and Level are copied from the pattern.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Level    Level  `json:"level,omitempty" yaml:"level,omitempty"`

	// Confidence is a ranking heuristic in [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// GenerateParams selects what to generate. Every field is optional.
type GenerateParams struct {
	// SchemaIDs restricts generation to these patterns.
	SchemaIDs []string

	// Tags restricts generation to patterns in these categories.
	Tags []string

	// UserInput is free-text intent, in Korean or English.
	UserInput string

	// Limit caps the number of results. Zero uses the engine default.
	Limit int

	// Rand, when set, shuffles the lexicon order for variety. The caller
	// owns it; it must not be shared between concurrent calls.
	Rand *rand.Rand
}

// TraceStage names the pipeline step that rejected a candidate.
type TraceStage string

const (
	StageSelect   TraceStage = "select"
	StagePrecheck TraceStage = "precheck"
	StageBind     TraceStage = "bind"
	StageAssemble TraceStage = "assemble"
	StageValidate TraceStage = "validate"
	StageDedupe   TraceStage = "dedupe"
)

// TraceEntry records one intermediate rejection for data-quality debugging.
type TraceEntry struct {
	SchemaID string     `json:"schema_id" yaml:"schema_id"`
	Stage    TraceStage `json:"stage" yaml:"stage"`
	Reason   string     `json:"reason" yaml:"reason"`
	Detail   string     `json:"detail,omitempty" yaml:"detail,omitempty"`
}
