// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import "github.com/pdiddy/sentence-engine/pkg/types"

// DefaultTables holds the built-in forbidden pairs and place rules. Packs
// add to these; they are reference data, not a closed list.
var DefaultTables = types.SemanticTables{
	Forbidden: []types.ForbiddenCombination{
		{
			Verbs:      []string{"eat", "eats", "ate", "eaten", "eating"},
			Objects:    []string{"water", "coffee", "juice", "milk", "tea"},
			Categories: []types.Category{types.CatBeverage},
			Reason:     "liquids are drunk, not eaten",
		},
		{
			Verbs:      []string{"drink", "drinks", "drank", "drunk", "drinking"},
			Categories: []types.Category{types.CatFood},
			Reason:     "solid food is eaten, not drunk",
		},
		{
			Verbs:      []string{"go", "goes", "went", "gone", "going"},
			Categories: []types.Category{types.CatBodyPart},
			Reason:     "a body part is not a destination",
		},
	},
	Places: []types.PlaceRule{
		{
			Activity: "meet",
			Places:   []string{"hospital", "bathroom", "restroom", "toilet"},
			Reason:   "not a conventional meeting place",
		},
	},
}
