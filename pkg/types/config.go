// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Engine defaults used when the configuration leaves a value at zero.
const (
	DefaultLimit           = 15
	DefaultMaxCombinations = 10
	DefaultMaxPerSchema    = 1
	DefaultHistoryResults  = 20
)

// EngineConfig holds settings for the generation orchestrator.
type EngineConfig struct {
	// Limit is the default maximum number of sentences per call (default 15).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`

	// MaxCombinations caps the slot combinations tried per pattern (default 10).
	MaxCombinations int `json:"max_combinations" yaml:"max_combinations" mapstructure:"max_combinations"`

	// MaxPerSchema caps the sentences accepted from one pattern (default 1).
	MaxPerSchema int `json:"max_per_schema" yaml:"max_per_schema" mapstructure:"max_per_schema"`

	// Denylist names pattern ids that are never selected.
	Denylist []string `json:"denylist,omitempty" yaml:"denylist,omitempty" mapstructure:"denylist"`
}

// WithDefaults returns a copy with zero values replaced by defaults.
func (c EngineConfig) WithDefaults() EngineConfig {
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.MaxCombinations <= 0 {
		c.MaxCombinations = DefaultMaxCombinations
	}
	if c.MaxPerSchema <= 0 {
		c.MaxPerSchema = DefaultMaxPerSchema
	}
	return c
}

// PackConfig holds settings for loading vocabulary and pattern packs.
type PackConfig struct {
	// Dirs lists directories scanned for *.yaml pack files, in order.
	Dirs []string `json:"dirs" yaml:"dirs" mapstructure:"dirs"`

	// SkipBuiltin disables the embedded default pack.
	SkipBuiltin bool `json:"skip_builtin" yaml:"skip_builtin" mapstructure:"skip_builtin"`
}

// HistoryConfig holds settings for the sentence history store.
type HistoryConfig struct {
	// Dir is the directory holding history.db and exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all settings read from sentence-engine.yaml.
type Config struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine" mapstructure:"engine"`
	Packs   PackConfig    `json:"packs" yaml:"packs" mapstructure:"packs"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}

// WithDefaults fills unset values across all sections.
func (c Config) WithDefaults() Config {
	c.Engine = c.Engine.WithDefaults()
	if c.History.Dir == "" {
		c.History.Dir = "history"
	}
	if c.History.MaxResults <= 0 {
		c.History.MaxResults = DefaultHistoryResults
	}
	return c
}
