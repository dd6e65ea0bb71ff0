// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inflect

var koreanIrregulars = map[string]koIrregular{
	"듣다":  {Infinitive: "들어", Prospective: "들을"},
	"걷다":  {Infinitive: "걸어", Prospective: "걸을"},
	"묻다":  {Infinitive: "물어", Prospective: "물을"},
	"돕다":  {Infinitive: "도와", Prospective: "도울"},
	"춥다":  {Infinitive: "추워", Prospective: "추울"},
	"덥다":  {Infinitive: "더워", Prospective: "더울"},
	"눕다":  {Infinitive: "누워", Prospective: "누울"},
	"쉽다":  {Infinitive: "쉬워", Prospective: "쉬울"},
	"어렵다": {Infinitive: "어려워", Prospective: "어려울"},
	"모르다": {Infinitive: "몰라", Prospective: "모를"},
	"부르다": {Infinitive: "불러", Prospective: "부를"},
	"빠르다": {Infinitive: "빨라", Prospective: "빠를"},
	"다르다": {Infinitive: "달라", Prospective: "다를"},
	"자르다": {Infinitive: "잘라", Prospective: "자를"},
	"고르다": {Infinitive: "골라", Prospective: "고를"},
	"짓다":  {Infinitive: "지어", Prospective: "지을"},
	"낫다":  {Infinitive: "나아", Prospective: "나을"},
	"이다":  {Infinitive: "이야", Prospective: "일"},
}

// koreanSpecialForms overrides whole forms per tense-aspect key. Stative
// verbs have no progressive; their progressive request falls back to the
// plain state.
var koreanSpecialForms = map[string]map[string]string{
	"있다": {
		"present-progressive": "있어",
		"past-progressive":    "있었어",
		"present-perfect":     "있었어",
	},
	"없다": {
		"present-progressive": "없어",
		"past-progressive":    "없었어",
		"present-perfect":     "없었어",
	},
	"알다": {
		"present-progressive": "알고 있어",
		"future-simple":       "알 거야",
	},
	"가다": {
		"present-perfect": "가 봤어",
	},
	"먹다": {
		"present-perfect": "먹어 봤어",
	},
}

// koreanLexicalNegatives are verbs negated by a different word, not by 안.
var koreanLexicalNegatives = map[string]string{
	"있다": "없다",
	"알다": "모르다",
}
