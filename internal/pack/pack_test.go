// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sentence-engine/internal/generate"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

const travelPack = `
name: travel
lexemes:
  - {id: travel.airport, en: airport, ko: 공항, pos: PLACE, tags: [travel]}
  - {id: travel.passport, en: passport, ko: 여권, pos: ITEM, semantic_category: DOCUMENT}
  - {id: travel.broken, en: "", ko: 빈칸, pos: NOUN}
patterns:
  - id: travel-lost
    category: travel
    surface: "I lost my [ITEM] at the [PLACE]."
    ko_surface: "[PLACE]에서 [ITEM]을/를 잃어버렸어."
    slots:
      - {name: ITEM, accept: [ITEM]}
      - {name: PLACE, accept: [PLACE]}
semantics:
  categories:
    DOCUMENT: [passport, visa]
intents:
  - tag: travel
    keywords: [airport, 공항]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(travelPack), "packs/travel.yaml")
	require.NoError(t, err)

	assert.Equal(t, "travel", p.Name)
	assert.Equal(t, "packs/travel.yaml", p.Source)
	require.Len(t, p.Lexemes, 3)
	assert.Equal(t, types.POSPlace, p.Lexemes[0].POS)
	assert.Equal(t, types.Category("DOCUMENT"), p.Lexemes[1].SemanticCategory)
	require.Len(t, p.Patterns, 1)
	assert.Equal(t, "[PLACE]에서 [ITEM]을/를 잃어버렸어.", p.Patterns[0].KoSurface)
	assert.True(t, p.Patterns[0].Slots[0].IsRequired())
	assert.Equal(t, []string{"passport", "visa"}, p.Semantics.Categories["DOCUMENT"])
	assert.Equal(t, "travel", p.Intents[0].Tag)
}

func TestParseDefaultsNameAndReportsErrors(t *testing.T) {
	p, err := Parse([]byte("lexemes: []\n"), "/tmp/packs/extra.yml")
	require.NoError(t, err)
	assert.Equal(t, "extra", p.Name)

	_, err = Parse([]byte("lexemes: [unclosed\n"), "bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing pack bad.yaml")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-travel.yaml", travelPack)
	writeFile(t, dir, "a-empty.yml", "name: empty\n")
	writeFile(t, dir, "notes.txt", "not a pack")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	packs, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, packs, 2)
	assert.Equal(t, "empty", packs[0].Name)
	assert.Equal(t, "travel", packs[1].Name)
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", travelPack)
	writeFile(t, dir, "bad.yaml", "patterns: {broken")
	_, err = LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "travel.yaml", travelPack)

	all, err := LoadAll(context.Background(), types.PackConfig{Dirs: []string{dir}})
	require.NoError(t, err)
	builtin, err := Builtin()
	require.NoError(t, err)
	require.Len(t, all, len(builtin)+1)
	assert.Equal(t, "travel", all[len(all)-1].Name)

	only, err := LoadAll(context.Background(), types.PackConfig{Dirs: []string{dir}, SkipBuiltin: true})
	require.NoError(t, err)
	require.Len(t, only, 1)
}

func TestBuiltinPacksAreClean(t *testing.T) {
	packs, err := Builtin()
	require.NoError(t, err)

	var names []string
	for _, p := range packs {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Lexemes, p.Name)
		assert.NotEmpty(t, p.Patterns, p.Name)
	}
	assert.Equal(t, []string{"business", "daily", "directions", "school"}, names)
	assert.Empty(t, Check(packs...))
}

func TestCheck(t *testing.T) {
	travel, err := Parse([]byte(travelPack), "travel.yaml")
	require.NoError(t, err)
	dup := &Pack{
		Name:    "dup",
		Lexemes: []types.Lexeme{{ID: "travel.airport", En: "airport", Ko: "공항", POS: types.POSPlace, SemanticCategory: "SPACEPORT"}},
		Patterns: []types.PatternSchema{
			{ID: "travel-lost", Surface: "x", KoSurface: "엑스"},
			{
				ID: "needs-person", Surface: "Call [PERSON].", KoSurface: "[PERSON]한테 전화해.",
				Slots: []types.SlotSpec{{Name: "PERSON", Accept: []types.POS{types.POSPerson}, SemanticConstraint: "ROBOT"}},
			},
		},
	}

	var messages []string
	for _, w := range Check(travel, dup) {
		messages = append(messages, w.String())
	}
	assert.ElementsMatch(t, []string{
		"travel: travel.broken: lexeme is missing id, en, ko or a known pos; it will be excluded",
		"dup: travel.airport: lexeme id already defined in travel",
		`dup: travel.airport: unknown semantic category "SPACEPORT"`,
		"dup: travel-lost: pattern id already defined in travel",
		`dup: needs-person: slot PERSON uses unknown semantic category "ROBOT"`,
		"dup: needs-person: required slot PERSON has no candidate lexeme",
	}, messages)
}

func TestSummarize(t *testing.T) {
	p, err := Parse([]byte(travelPack), "travel.yaml")
	require.NoError(t, err)
	p.Patterns[0].Level = types.LevelBeginner

	s := Summarize(p)
	assert.Equal(t, 3, s.Lexemes)
	assert.Equal(t, 1, s.Patterns)
	assert.Equal(t, map[string]int{"PLACE": 1, "ITEM": 1, "NOUN": 1}, s.ByPOS)
	assert.Equal(t, []string{"beginner"}, s.Levels)
}

func TestApplyMergesPackData(t *testing.T) {
	travel, err := Parse([]byte(travelPack), "travel.yaml")
	require.NoError(t, err)

	cat := Apply(travel)
	assert.Equal(t, 2, cat.Lexicon.Len(), "entry with empty en is excluded")
	assert.Equal(t, 1, cat.Registry.Len())
	assert.True(t, cat.Classifier.Has("visa", "DOCUMENT"))
	assert.True(t, cat.Classifier.Has("coffee", types.CatBeverage), "built-in tables kept")
	assert.Equal(t, []string{"travel"}, cat.Intents.Classify("airport 공항"))
}

func TestBuiltinCatalogGenerates(t *testing.T) {
	packs, err := Builtin()
	require.NoError(t, err)
	cat := Apply(packs...)
	e := generate.New(types.EngineConfig{},
		generate.WithClassifier(cat.Classifier),
		generate.WithValidator(cat.Validator),
		generate.WithIntents(cat.Intents))

	t.Run("every pattern produces a sentence", func(t *testing.T) {
		got, err := e.Generate(cat.Lexicon, cat.Registry, types.GenerateParams{Limit: 100})
		require.NoError(t, err)

		produced := make(map[string]bool)
		for _, s := range got {
			produced[s.SchemaID] = true
		}
		for _, schema := range cat.Registry.All() {
			assert.True(t, produced[schema.ID], schema.ID)
		}
	})

	t.Run("intent prefers tagged vocabulary", func(t *testing.T) {
		got, err := e.Generate(cat.Lexicon, cat.Registry, types.GenerateParams{
			SchemaIDs: []string{"directions-where-is"},
			UserInput: "병원 어디 있어?",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Where is the hospital?", got[0].Text)
		assert.Equal(t, "병원 어디 있어?", got[0].Korean)
	})

	t.Run("selected sentences", func(t *testing.T) {
		got, err := e.Generate(cat.Lexicon, cat.Registry, types.GenerateParams{
			SchemaIDs: []string{"daily-does-not", "daily-yesterday", "school-will-read"},
		})
		require.NoError(t, err)

		pairs := make(map[string]string)
		for _, s := range got {
			pairs[s.Text] = s.Korean
		}
		assert.Equal(t, map[string]string{
			"My coworker does not drink water.":     "내 동료는 물을 안 마셔.",
			"I ate bread yesterday.":                "나는 어제 빵을 먹었어.",
			"I will read two books this afternoon.": "나는 오늘 오후 책 두 권을 읽을 거야.",
		}, pairs)
	})
}
