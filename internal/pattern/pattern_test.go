// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		surface string
		want    Template
	}{
		{
			name:    "single slot",
			surface: "Where is the [PLACE]?",
			want: Template{
				{Kind: Literal, Text: "Where is the "},
				{Kind: Slot, Text: "PLACE"},
				{Kind: Literal, Text: "?"},
			},
		},
		{
			name:    "adjacent slots",
			surface: "[PERSON] [VERB]",
			want: Template{
				{Kind: Slot, Text: "PERSON"},
				{Kind: Literal, Text: " "},
				{Kind: Slot, Text: "VERB"},
			},
		},
		{
			name:    "legacy braces normalized to upper case",
			surface: "I like {{object}}.",
			want: Template{
				{Kind: Literal, Text: "I like "},
				{Kind: Slot, Text: "OBJECT"},
				{Kind: Literal, Text: "."},
			},
		},
		{
			name:    "brackets without a name stay literal",
			surface: "a [] b [1x] c",
			want:    Template{{Kind: Literal, Text: "a [] b [1x] c"}},
		},
		{
			name:    "unterminated bracket stays literal",
			surface: "open [PLACE",
			want:    Template{{Kind: Literal, Text: "open [PLACE"}},
		},
		{
			name:    "korean surface",
			surface: "[PLACE] 어디 있어?",
			want: Template{
				{Kind: Slot, Text: "PLACE"},
				{Kind: Literal, Text: " 어디 있어?"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.surface))
		})
	}
}

func TestTemplateSlots(t *testing.T) {
	tmpl := Parse("[A] and [B] and [A] again")
	assert.Equal(t, []string{"A", "B"}, tmpl.Slots())
	assert.True(t, tmpl.HasSlot("B"))
	assert.False(t, tmpl.HasSlot("C"))
	assert.Equal(t, " and  and  again", tmpl.LiteralText())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		schema types.PatternSchema
		want   []string
	}{
		{
			name: "clean pattern",
			schema: types.PatternSchema{
				ID: "where", Surface: "Where is the [PLACE]?", KoSurface: "[PLACE] 어디 있어?",
				Slots: []types.SlotSpec{{Name: "PLACE", Accept: []types.POS{types.POSPlace}}},
			},
		},
		{
			name: "placeholder without slot",
			schema: types.PatternSchema{
				ID: "p1", Surface: "I [VERB] the [OBJECT].", KoSurface: "[OBJECT]을/를 [VERB]",
				Slots: []types.SlotSpec{{Name: "VERB", Accept: []types.POS{types.POSVerb}}},
			},
			want: []string{
				"surface placeholder [OBJECT] has no slot",
				"ko_surface placeholder [OBJECT] has no slot",
			},
		},
		{
			name: "slot missing from korean surface",
			schema: types.PatternSchema{
				ID: "p2", Surface: "Meet [PERSON].", KoSurface: "만나.",
				Slots: []types.SlotSpec{{Name: "PERSON", Accept: []types.POS{types.POSPerson}}},
			},
			want: []string{"slot PERSON does not appear in ko_surface"},
		},
		{
			name: "bad accept list",
			schema: types.PatternSchema{
				ID: "p3", Surface: "[X]", KoSurface: "[X]",
				Slots: []types.SlotSpec{{Name: "X", Accept: []types.POS{"ADJ"}}},
			},
			want: []string{`slot X accepts unknown part of speech "ADJ"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, w := range Check(tt.schema) {
				got = append(got, w.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
