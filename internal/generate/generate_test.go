// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"math/rand/v2"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/sentence-engine/internal/lexicon"
	"github.com/pdiddy/sentence-engine/internal/registry"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

func slotSpec(name string, accept ...types.POS) types.SlotSpec {
	return types.SlotSpec{Name: name, Accept: accept}
}

var (
	whereIs = types.PatternSchema{
		ID: "where-is", Category: "directions", Level: types.LevelBeginner,
		Surface: "Where is the [PLACE]?", KoSurface: "[PLACE] 어디 있어?",
		Slots: []types.SlotSpec{slotSpec("PLACE", types.POSPlace)},
	}
	eatObject = types.PatternSchema{
		ID: "eat-object", Category: "daily", Level: types.LevelBeginner,
		Surface: "I [VERB] [OBJECT].", KoSurface: "나는 [OBJECT]을/를 [VERB].",
		Slots: []types.SlotSpec{slotSpec("VERB", types.POSVerb), slotSpec("OBJECT", types.POSNoun)},
	}
	meetPerson = types.PatternSchema{
		ID: "meet-person", Category: "daily",
		Surface: "Let's meet [PERSON].", KoSurface: "[PERSON] 만나자.",
		Slots: []types.SlotSpec{slotSpec("PERSON", types.POSPerson)},
	}
	likeTwo = types.PatternSchema{
		ID: "like-two", Category: "daily",
		Surface: "I like [A] and [B].", KoSurface: "나는 [A]하고 [B] 좋아해.",
		Slots: []types.SlotSpec{slotSpec("A", types.POSNoun), slotSpec("B", types.POSNoun)},
	}
)

func lx(id, en, ko string, pos types.POS) types.Lexeme {
	return types.Lexeme{ID: id, En: en, Ko: ko, POS: pos}
}

func newRegistry(schemas ...types.PatternSchema) *registry.Registry {
	r := registry.New()
	r.Register(schemas...)
	return r
}

var residual = regexp.MustCompile(`\[[A-Z_]+\]`)

func TestNotInitialized(t *testing.T) {
	e := New(types.EngineConfig{})

	_, err := e.Generate(nil, registry.New(), types.GenerateParams{})
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = e.Generate(lexicon.New(nil), nil, types.GenerateParams{})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestWhereIsHospital(t *testing.T) {
	e := New(types.EngineConfig{})
	lex := lexicon.New([]types.Lexeme{lx("hospital", "hospital", "병원", types.POSPlace)})

	got, err := e.Generate(lex, newRegistry(whereIs), types.GenerateParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Where is the hospital?", got[0].Text)
	assert.Equal(t, "병원 어디 있어?", got[0].Korean)
	assert.Equal(t, []string{"hospital"}, got[0].UsedLexemeIDs)
	assert.Equal(t, "where-is", got[0].SchemaID)
	assert.Equal(t, "directions", got[0].Category)
	assert.InDelta(t, 0.6, got[0].Confidence, 1e-9)
}

func TestEmptyRequiredPool(t *testing.T) {
	e := New(types.EngineConfig{})
	lex := lexicon.New([]types.Lexeme{lx("hospital", "hospital", "병원", types.POSPlace)})

	res, err := e.Run(lex, newRegistry(meetPerson, whereIs), types.GenerateParams{})
	require.NoError(t, err)
	require.Len(t, res.Sentences, 1)
	assert.Equal(t, "where-is", res.Sentences[0].SchemaID)
	assert.Contains(t, res.Trace, types.TraceEntry{
		SchemaID: "meet-person", Stage: types.StagePrecheck,
		Reason: "no candidate for required slot", Detail: "PERSON",
	})

	got, err := e.Generate(lex, newRegistry(meetPerson), types.GenerateParams{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForbiddenPairsExcluded(t *testing.T) {
	e := New(types.EngineConfig{})

	t.Run("eat with liquids only", func(t *testing.T) {
		lex := lexicon.New([]types.Lexeme{
			lx("eat", "eat", "먹다", types.POSVerb),
			lx("water", "water", "물", types.POSNoun),
			lx("coffee", "coffee", "커피", types.POSNoun),
			lx("juice", "juice", "주스", types.POSNoun),
			lx("milk", "milk", "우유", types.POSNoun),
		})
		res, err := e.Run(lex, newRegistry(eatObject), types.GenerateParams{})
		require.NoError(t, err)
		assert.Empty(t, res.Sentences)
		require.NotEmpty(t, res.Trace)
		assert.Equal(t, types.StageValidate, res.Trace[0].Stage)
	})

	t.Run("drink with solid food only", func(t *testing.T) {
		lex := lexicon.New([]types.Lexeme{
			lx("drink", "drink", "마시다", types.POSVerb),
			lx("bread", "bread", "빵", types.POSNoun),
			lx("rice", "rice", "밥", types.POSNoun),
		})
		got, err := e.Generate(lex, newRegistry(eatObject), types.GenerateParams{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("next combination survives", func(t *testing.T) {
		lex := lexicon.New([]types.Lexeme{
			lx("eat", "eat", "먹다", types.POSVerb),
			lx("water", "water", "물", types.POSNoun),
			lx("bread", "bread", "빵", types.POSNoun),
		})
		got, err := e.Generate(lex, newRegistry(eatObject), types.GenerateParams{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "I eat bread.", got[0].Text)
		assert.Equal(t, "나는 빵을 먹어.", got[0].Korean)
	})
}

func TestNoDuplicateLexemeInSentence(t *testing.T) {
	e := New(types.EngineConfig{MaxPerSchema: 5})
	lex := lexicon.New([]types.Lexeme{
		lx("bread", "bread", "빵", types.POSNoun),
		lx("apple", "apple", "사과", types.POSNoun),
		lx("rice", "rice", "밥", types.POSNoun),
	})

	got, err := e.Generate(lex, newRegistry(likeTwo), types.GenerateParams{})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "I like bread and apple.", got[0].Text)
	for _, s := range got {
		seen := make(map[string]bool)
		for _, id := range s.UsedLexemeIDs {
			assert.False(t, seen[id], "%s reuses %s", s.Text, id)
			seen[id] = true
		}
	}
}

func TestSentencePropertiesOverLargerLexicon(t *testing.T) {
	e := New(types.EngineConfig{MaxPerSchema: 3})
	lex := lexicon.New([]types.Lexeme{
		lx("eat", "eat", "먹다", types.POSVerb),
		lx("drink", "drink", "마시다", types.POSVerb),
		lx("water", "water", "물", types.POSNoun),
		lx("bread", "bread", "빵", types.POSNoun),
		lx("coffee", "coffee", "커피", types.POSNoun),
		lx("apple", "apple", "사과", types.POSNoun),
		lx("hospital", "hospital", "병원", types.POSPlace),
		lx("station", "station", "역", types.POSPlace),
		lx("bank", "bank", "은행", types.POSPlace),
	})
	reg := newRegistry(whereIs, eatObject, likeTwo, meetPerson)

	for _, limit := range []int{1, 2, 4, 100} {
		got, err := e.Generate(lex, reg, types.GenerateParams{Limit: limit, UserInput: "coffee"})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), limit)

		texts := make(map[string]bool)
		for i, s := range got {
			assert.False(t, residual.MatchString(s.Text), s.Text)
			assert.NotContains(t, []string{"I eat water.", "I eat coffee.", "I drink bread.", "I drink apple."}, s.Text)
			assert.False(t, texts[s.Text], "duplicate %q", s.Text)
			texts[s.Text] = true
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].Confidence, s.Confidence)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	e := New(types.EngineConfig{MaxPerSchema: 2})
	lex := lexicon.New([]types.Lexeme{
		lx("eat", "eat", "먹다", types.POSVerb),
		lx("bread", "bread", "빵", types.POSNoun),
		lx("apple", "apple", "사과", types.POSNoun),
		lx("rice", "rice", "밥", types.POSNoun),
		lx("hospital", "hospital", "병원", types.POSPlace),
		lx("bank", "bank", "은행", types.POSPlace),
	})
	reg := newRegistry(whereIs, eatObject, likeTwo)

	first, err := e.Generate(lex, reg, types.GenerateParams{UserInput: "bread"})
	require.NoError(t, err)
	second, err := e.Generate(lex, reg, types.GenerateParams{UserInput: "bread"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	seeded := func() []types.GeneratedSentence {
		got, err := e.Generate(lex, reg, types.GenerateParams{Rand: rand.New(rand.NewPCG(7, 11))})
		require.NoError(t, err)
		return got
	}
	assert.Equal(t, seeded(), seeded())
}

func TestConfidenceOrdering(t *testing.T) {
	e := New(types.EngineConfig{})
	lex := lexicon.New([]types.Lexeme{
		lx("eat", "eat", "먹다", types.POSVerb),
		lx("bread", "bread", "빵", types.POSNoun),
		lx("hospital", "hospital", "병원", types.POSPlace),
	})

	got, err := e.Generate(lex, newRegistry(whereIs, eatObject), types.GenerateParams{
		SchemaIDs: []string{"where-is", "eat-object"},
		UserInput: "bread",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "eat-object", got[0].SchemaID)
	assert.Greater(t, got[0].Confidence, got[1].Confidence)
}

func TestSchemaSelection(t *testing.T) {
	lex := lexicon.New([]types.Lexeme{
		lx("eat", "eat", "먹다", types.POSVerb),
		lx("bread", "bread", "빵", types.POSNoun),
		lx("hospital", "hospital", "병원", types.POSPlace),
	})
	noKorean := types.PatternSchema{
		ID: "no-korean", Category: "directions", Surface: "Go to the [PLACE].", KoSurface: "[PLACE]",
		Slots: []types.SlotSpec{slotSpec("PLACE", types.POSPlace)},
	}
	reg := newRegistry(whereIs, eatObject, noKorean)

	schemaIDs := func(got []types.GeneratedSentence) []string {
		var ids []string
		for _, s := range got {
			ids = append(ids, s.SchemaID)
		}
		return ids
	}

	tests := []struct {
		name   string
		cfg    types.EngineConfig
		params types.GenerateParams
		want   []string
	}{
		{"all", types.EngineConfig{}, types.GenerateParams{}, []string{"where-is", "eat-object"}},
		{"explicit ids", types.EngineConfig{}, types.GenerateParams{SchemaIDs: []string{"eat-object", "missing"}}, []string{"eat-object"}},
		{"explicit tags", types.EngineConfig{}, types.GenerateParams{Tags: []string{"daily"}}, []string{"eat-object"}},
		{"explicit tags match nothing", types.EngineConfig{}, types.GenerateParams{Tags: []string{"business"}}, nil},
		{"inferred tags", types.EngineConfig{}, types.GenerateParams{UserInput: "버스 어디"}, []string{"where-is"}},
		{"inferred tags fall back", types.EngineConfig{}, types.GenerateParams{UserInput: "회의"}, []string{"where-is", "eat-object"}},
		{"denylist", types.EngineConfig{Denylist: []string{"where-is"}}, types.GenerateParams{}, []string{"eat-object"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg).Generate(lex, reg, tt.params)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, schemaIDs(got))
		})
	}
}

func TestTraceRecordsSelection(t *testing.T) {
	e := New(types.EngineConfig{Denylist: []string{"eat-object"}})
	res, err := e.Run(lexicon.New(nil), newRegistry(whereIs, eatObject), types.GenerateParams{
		SchemaIDs: []string{"eat-object", "ghost"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Sentences)
	assert.ElementsMatch(t, []types.TraceEntry{
		{SchemaID: "ghost", Stage: types.StageSelect, Reason: "unknown pattern id"},
		{SchemaID: "eat-object", Stage: types.StageSelect, Reason: "denylisted"},
	}, res.Trace)
}

func TestUndeclaredPlaceholderRejected(t *testing.T) {
	broken := types.PatternSchema{
		ID: "broken", Surface: "Meet [PERSON] at the [PLACE].", KoSurface: "[PLACE]에서 [PERSON] 만나.",
		Slots: []types.SlotSpec{slotSpec("PLACE", types.POSPlace)},
	}
	lex := lexicon.New([]types.Lexeme{lx("cafe", "cafe", "카페", types.POSPlace)})

	res, err := New(types.EngineConfig{}).Run(lex, newRegistry(broken), types.GenerateParams{})
	require.NoError(t, err)
	assert.Empty(t, res.Sentences)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, types.StageAssemble, res.Trace[0].Stage)
}

func TestMorphologyAndNumber(t *testing.T) {
	goesDaily := types.PatternSchema{
		ID: "goes-daily", Surface: "She [VERB] there every day.", KoSurface: "그녀는 매일 거기 [VERB].",
		Slots: []types.SlotSpec{{
			Name: "VERB", Accept: []types.POS{types.POSVerb},
			Morph: types.VerbFeatures{Person: types.ThirdPerson},
		}},
	}
	likePlural := types.PatternSchema{
		ID: "like-plural", Surface: "I like [OBJECT].", KoSurface: "나는 [OBJECT]을/를 좋아해.",
		Slots: []types.SlotSpec{{Name: "OBJECT", Accept: []types.POS{types.POSNoun}, Number: types.Plural}},
	}
	lex := lexicon.New([]types.Lexeme{
		lx("go", "go", "가다", types.POSVerb),
		lx("apple", "apple", "사과", types.POSNoun),
	})

	got, err := New(types.EngineConfig{}).Generate(lex, newRegistry(goesDaily, likePlural), types.GenerateParams{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	texts := map[string]string{}
	for _, s := range got {
		texts[s.SchemaID] = s.Text + " / " + s.Korean
	}
	assert.Equal(t, "She goes there every day. / 그녀는 매일 거기 가.", texts["goes-daily"])
	assert.Equal(t, "I like apples. / 나는 사과를 좋아해.", texts["like-plural"])
}

func TestRejectionsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := New(types.EngineConfig{}, WithLogger(zap.New(core)))
	lex := lexicon.New([]types.Lexeme{
		lx("eat", "eat", "먹다", types.POSVerb),
		lx("water", "water", "물", types.POSNoun),
	})

	_, err := e.Generate(lex, newRegistry(eatObject), types.GenerateParams{})
	require.NoError(t, err)

	rejected := logs.FilterMessage("candidate rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, "eat-object", fields["schema"])
	assert.Equal(t, "validate", fields["stage"])
	assert.Equal(t, "forbidden verb-object pair", fields["reason"])
	assert.Equal(t, 1, logs.FilterMessage("generation finished").Len())
}

func TestConcurrentCalls(t *testing.T) {
	defer goleak.VerifyNone(t)

	e := New(types.EngineConfig{MaxPerSchema: 2})
	lex := lexicon.New([]types.Lexeme{
		lx("eat", "eat", "먹다", types.POSVerb),
		lx("bread", "bread", "빵", types.POSNoun),
		lx("apple", "apple", "사과", types.POSNoun),
		lx("hospital", "hospital", "병원", types.POSPlace),
	})
	reg := newRegistry(whereIs, eatObject, likeTwo)
	want, err := e.Generate(lex, reg, types.GenerateParams{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]types.GeneratedSentence, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = e.Generate(lex, reg, types.GenerateParams{})
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestTwoVerbTemplate(t *testing.T) {
	e := New(types.EngineConfig{})
	lex := lexicon.New([]types.Lexeme{
		lx("bread", "bread", "빵", types.POSNoun),
		lx("water", "water", "물", types.POSNoun),
	})

	t.Run("each verb keeps its own object", func(t *testing.T) {
		eatAndDrink := types.PatternSchema{
			ID: "eat-and-drink", Category: "daily",
			Surface: "I eat [FOOD] and drink [DRINK].", KoSurface: "나는 [FOOD]을/를 먹고 [DRINK]을/를 마셔.",
			Slots: []types.SlotSpec{
				{Name: "FOOD", Accept: []types.POS{types.POSNoun}, SemanticConstraint: types.CatFood},
				{Name: "DRINK", Accept: []types.POS{types.POSNoun}, SemanticConstraint: types.CatBeverage},
			},
		}
		got, err := e.Generate(lex, newRegistry(eatAndDrink), types.GenerateParams{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "I eat bread and drink water.", got[0].Text)
		assert.Equal(t, "나는 빵을 먹고 물을 마셔.", got[0].Korean)
	})

	t.Run("wrong pairing rejected, right one kept", func(t *testing.T) {
		drinkAndEat := types.PatternSchema{
			ID: "drink-and-eat", Category: "daily",
			Surface: "I drink [A] and eat [B].", KoSurface: "나는 [A]을/를 마시고 [B]을/를 먹어.",
			Slots: []types.SlotSpec{slotSpec("A", types.POSNoun), slotSpec("B", types.POSNoun)},
		}
		res, err := e.Run(lex, newRegistry(drinkAndEat), types.GenerateParams{})
		require.NoError(t, err)
		require.Len(t, res.Sentences, 1)
		assert.Equal(t, "I drink water and eat bread.", res.Sentences[0].Text)

		var validateRejections int
		for _, tr := range res.Trace {
			if tr.Stage == types.StageValidate {
				validateRejections++
			}
		}
		assert.Equal(t, 1, validateRejections, "drink bread and eat water")
	})
}
