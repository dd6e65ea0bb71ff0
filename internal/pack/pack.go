// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pack loads vocabulary and pattern packs from YAML and turns a set
// of packs into the reference data a generation call reads.
//
// A pack file holds lexemes, patterns, optional semantic tables and optional
// intent keyword rules. Packs are independent: each registers its patterns
// without coordinating with the others, and duplicate ids keep the first
// occurrence in load order. The default pack is compiled into the binary.
package pack

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/sentence-engine/internal/intent"
	"github.com/pdiddy/sentence-engine/internal/lexicon"
	"github.com/pdiddy/sentence-engine/internal/registry"
	"github.com/pdiddy/sentence-engine/internal/semantic"
	"github.com/pdiddy/sentence-engine/internal/validate"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

//go:embed data/*.yaml
var builtin embed.FS

// maxParallel bounds concurrent file parsing in LoadDir.
const maxParallel = 8

// Pack is one YAML data pack.
type Pack struct {
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Lexemes     []types.Lexeme        `json:"lexemes,omitempty" yaml:"lexemes,omitempty"`
	Patterns    []types.PatternSchema `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Semantics   types.SemanticTables  `json:"semantics,omitempty" yaml:"semantics,omitempty"`
	Intents     []intent.Rule         `json:"intents,omitempty" yaml:"intents,omitempty"`

	// Source is the file the pack was read from.
	Source string `json:"-" yaml:"-"`
}

// Parse decodes a pack. source names the origin in errors and defaults the
// pack name to the file's base name.
func Parse(data []byte, source string) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pack %s: %w", source, err)
	}
	p.Source = source
	if p.Name == "" {
		p.Name = strings.TrimSuffix(path.Base(filepath.ToSlash(source)), path.Ext(source))
	}
	return &p, nil
}

// Load reads a single pack file.
func Load(file string) (*Pack, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading pack: %w", err)
	}
	return Parse(data, file)
}

// Files returns the *.yaml and *.yml files in dir, sorted by name.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pack directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadDir parses every pack file in dir concurrently. The result keeps file
// name order. The first error cancels the remaining reads.
func LoadDir(ctx context.Context, dir string) ([]*Pack, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}
	packs := make([]*Pack, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Load(f)
			if err != nil {
				return err
			}
			packs[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return packs, nil
}

// Builtin returns the packs compiled into the binary, sorted by file name.
func Builtin() ([]*Pack, error) {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("reading builtin packs: %w", err)
	}
	var packs []*Pack
	for _, e := range entries {
		data, err := builtin.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading builtin pack %s: %w", e.Name(), err)
		}
		p, err := Parse(data, "builtin:"+e.Name())
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// LoadAll returns the builtin packs (unless cfg.SkipBuiltin) followed by
// the packs of each configured directory in order.
func LoadAll(ctx context.Context, cfg types.PackConfig) ([]*Pack, error) {
	var packs []*Pack
	if !cfg.SkipBuiltin {
		b, err := Builtin()
		if err != nil {
			return nil, err
		}
		packs = append(packs, b...)
	}
	for _, dir := range cfg.Dirs {
		d, err := LoadDir(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("loading packs from %s: %w", dir, err)
		}
		packs = append(packs, d...)
	}
	return packs, nil
}

// Catalog is the reference data built from a set of packs. Nothing in it
// changes after Apply.
type Catalog struct {
	Lexicon    *lexicon.Lexicon
	Registry   *registry.Registry
	Classifier *semantic.Classifier
	Validator  *validate.Validator
	Intents    *intent.Classifier
}

// Apply merges packs in order on top of the built-in tables.
func Apply(packs ...*Pack) *Catalog {
	var (
		entries    []types.Lexeme
		categories = []map[types.Category][]string{semantic.DefaultCategories}
		tables     = []types.SemanticTables{validate.DefaultTables}
		rules      = append([]intent.Rule(nil), intent.DefaultRules...)
		reg        = registry.New()
	)
	for _, p := range packs {
		entries = append(entries, p.Lexemes...)
		reg.Register(p.Patterns...)
		if len(p.Semantics.Categories) > 0 {
			categories = append(categories, p.Semantics.Categories)
		}
		tables = append(tables, p.Semantics)
		rules = append(rules, p.Intents...)
	}
	cls := semantic.New(categories...)
	return &Catalog{
		Lexicon:    lexicon.New(entries),
		Registry:   reg,
		Classifier: cls,
		Validator:  validate.New(cls, tables...),
		Intents:    intent.New(rules...),
	}
}
