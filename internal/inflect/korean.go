// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inflect

import (
	"strings"

	"github.com/pdiddy/sentence-engine/internal/hangul"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// koIrregular carries the stems that the regular 아/어 rule gets wrong
// (ㄷ, ㅂ, ㅅ and 르 irregulars).
type koIrregular struct {
	// Infinitive is the 아/어 form, e.g. 들어 for 듣다.
	Infinitive string
	// Prospective is the stem before ㄹ 거야, e.g. 들을 for 듣다.
	Prospective string
}

// Korean conjugates verbs into the informal speech level. The zero value is
// not usable; call NewKorean.
type Korean struct {
	irregular map[string]koIrregular
	special   map[string]map[string]string
	negative  map[string]string
}

// NewKorean returns an inflector over the built-in tables.
func NewKorean() *Korean {
	return &Korean{
		irregular: koreanIrregulars,
		special:   koreanSpecialForms,
		negative:  koreanLexicalNegatives,
	}
}

// Inflect conjugates a dictionary-form verb (ending in 다). Only the
// tense/aspect combinations used by the pattern library are supported;
// person and number do not affect Korean verbs. Empty features yield the
// informal present. Multi-word verbs ("숙제를 하다") inflect the last word.
func (k *Korean) Inflect(verb string, f types.VerbFeatures) string {
	verb = strings.TrimSpace(verb)
	if verb == "" {
		return verb
	}
	prefix := ""
	if i := strings.LastIndexByte(verb, ' '); i >= 0 {
		prefix, verb = verb[:i+1], verb[i+1:]
	}
	r := f.Resolved()

	if r.Polarity == types.Negative {
		if opposite, ok := k.negative[verb]; ok {
			return prefix + k.affirmative(opposite, r)
		}
		// 공부하다 → 공부 안 해: the negator goes before 하다, except for
		// 좋아하다-type verbs whose first part is itself a verb form.
		if noun, ok := strings.CutSuffix(verb, "하다"); ok && noun != "" &&
			!strings.HasSuffix(noun, "아") && !strings.HasSuffix(noun, "어") {
			return prefix + noun + " 안 " + k.affirmative("하다", r)
		}
		return prefix + "안 " + k.affirmative(verb, r)
	}
	return prefix + k.affirmative(verb, r)
}

func (k *Korean) affirmative(verb string, r types.VerbFeatures) string {
	key := string(r.Tense) + "-" + string(r.Aspect)
	if forms, ok := k.special[verb]; ok {
		if form, ok := forms[key]; ok {
			return form
		}
	}

	stem := strings.TrimSuffix(verb, "다")
	switch r.Aspect {
	case types.AspectProgressive:
		switch r.Tense {
		case types.TensePast:
			return stem + "고 있었어"
		case types.TenseFuture:
			return stem + "고 있을 거야"
		}
		return stem + "고 있어"
	case types.AspectPerfect:
		past := hangul.WithFinal(k.Infinitive(verb), hangul.FinalSS)
		switch r.Tense {
		case types.TensePast:
			return past + "었어"
		case types.TenseFuture:
			return past + "을 거야"
		}
		return past + "어"
	}

	switch r.Tense {
	case types.TensePast:
		return hangul.WithFinal(k.Infinitive(verb), hangul.FinalSS) + "어"
	case types.TenseFuture:
		return k.Prospective(verb) + " 거야"
	}
	return k.Infinitive(verb)
}

// Infinitive returns the 아/어 form of a dictionary-form verb, which is
// also the informal present.
func (k *Korean) Infinitive(verb string) string {
	if irr, ok := k.irregular[verb]; ok {
		return irr.Infinitive
	}
	stem := strings.TrimSuffix(verb, "다")
	last, ok := hangul.LastSyllable(stem)
	if !ok {
		return stem
	}

	if last.Final != hangul.FinalNone {
		if bright(last.Medial) {
			return stem + "아"
		}
		return stem + "어"
	}

	switch last.Medial {
	case hangul.VowelA:
		if last == (hangul.Syllable{Initial: initialH, Medial: hangul.VowelA}) {
			last.Medial = hangul.VowelAe
			return hangul.ReplaceLast(stem, last)
		}
		return stem
	case hangul.VowelEo, hangul.VowelAe, hangul.VowelE, hangul.VowelYeo:
		return stem
	case hangul.VowelO:
		last.Medial = hangul.VowelWa
	case hangul.VowelU:
		last.Medial = hangul.VowelWo
	case hangul.VowelI:
		last.Medial = hangul.VowelYeo
	case hangul.VowelOe:
		last.Medial = hangul.VowelWae
	case hangul.VowelEu:
		last.Medial = hangul.VowelEo
		if prev, ok := previousSyllable(stem); ok && bright(prev.Medial) {
			last.Medial = hangul.VowelA
		}
	default:
		return stem + "어"
	}
	return hangul.ReplaceLast(stem, last)
}

// Prospective returns the stem form that precedes 거야.
func (k *Korean) Prospective(verb string) string {
	if irr, ok := k.irregular[verb]; ok && irr.Prospective != "" {
		return irr.Prospective
	}
	stem := strings.TrimSuffix(verb, "다")
	last, ok := hangul.LastSyllable(stem)
	switch {
	case !ok:
		return stem
	case last.Final == hangul.FinalNone:
		return hangul.WithFinal(stem, hangul.FinalL)
	case last.Final == hangul.FinalL:
		return stem
	}
	return stem + "을"
}

// initialH is the index of ㅎ among initial consonants.
const initialH = 18

func bright(medial int) bool {
	return medial == hangul.VowelA || medial == hangul.VowelO
}

func previousSyllable(stem string) (hangul.Syllable, bool) {
	runes := []rune(stem)
	if len(runes) < 2 {
		return hangul.Syllable{}, false
	}
	return hangul.Decompose(runes[len(runes)-2])
}
