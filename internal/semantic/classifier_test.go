// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

func TestClassify(t *testing.T) {
	c := Default()

	tests := []struct {
		word string
		want []types.Category
	}{
		{"coffee", []types.Category{types.CatBeverage, types.CatCookable}},
		{"Coffee", []types.Category{types.CatBeverage, types.CatCookable}},
		{"  WATER ", []types.Category{types.CatBeverage}},
		{"bread", []types.Category{types.CatFood}},
		{"pen", []types.Category{types.CatNonConsumable, types.CatTool}},
		{"커피", []types.Category{types.CatBeverage}},
		{"hospital", []types.Category{}},
		{"coffees", []types.Category{}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.word).Sorted())
		})
	}
}

func TestClassifyReturnsFreshSet(t *testing.T) {
	c := Default()
	s := c.Classify("water")
	s[types.CatFood] = struct{}{}
	assert.False(t, c.Has("water", types.CatFood))
}

func TestNewMergesTables(t *testing.T) {
	c := New(DefaultCategories, map[types.Category][]string{
		types.CatBeverage: {"sikhye"},
		"DESSERT":         {"cake"},
	})

	assert.True(t, c.Has("sikhye", types.CatBeverage))
	assert.True(t, c.Has("cake", types.CatFood), "defaults survive the merge")
	assert.True(t, c.Has("cake", "DESSERT"))
}

func TestClassifyLexeme(t *testing.T) {
	c := Default()

	lx := types.Lexeme{ID: "1", En: "sikhye", Ko: "식혜", POS: types.POSNoun, SemanticCategory: types.CatBeverage}
	assert.Equal(t, []types.Category{types.CatBeverage}, c.ClassifyLexeme(lx).Sorted())
	assert.True(t, c.LexemeHas(lx, types.CatBeverage))

	car := types.Lexeme{ID: "2", En: "car", Ko: "차", POS: types.POSItem}
	assert.False(t, c.LexemeHas(car, types.CatBeverage), "korean homographs are ignored")
	assert.True(t, c.LexemeHas(car, types.CatNonConsumable))
}
