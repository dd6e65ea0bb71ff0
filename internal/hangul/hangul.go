// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hangul does syllable arithmetic on precomposed Hangul (U+AC00 to
// U+D7A3): splitting a syllable into initial/medial/final jamo indices,
// recomposing, and choosing particle allomorphs from the final consonant.
package hangul

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	base       = 0xAC00
	last       = 0xD7A3
	medialCnt  = 21
	finalCnt   = 28
	syllPerIni = medialCnt * finalCnt
)

// Medial vowel indices used by the conjugation rules.
const (
	VowelA   = 0  // ㅏ
	VowelAe  = 1  // ㅐ
	VowelEo  = 4  // ㅓ
	VowelE   = 5  // ㅔ
	VowelYeo = 6  // ㅕ
	VowelO   = 8  // ㅗ
	VowelWa  = 9  // ㅘ
	VowelWae = 10 // ㅙ
	VowelOe  = 11 // ㅚ
	VowelU   = 13 // ㅜ
	VowelWo  = 14 // ㅝ
	VowelEu  = 18 // ㅡ
	VowelI   = 20 // ㅣ
)

// Final consonant indices used by the conjugation rules.
const (
	FinalNone = 0
	FinalL    = 8  // ㄹ
	FinalSS   = 20 // ㅆ
)

// Syllable is a decomposed Hangul syllable.
type Syllable struct {
	Initial, Medial, Final int
}

// IsHangul reports whether r is a precomposed Hangul syllable.
func IsHangul(r rune) bool {
	return r >= base && r <= last
}

// Decompose splits r. ok is false for non-Hangul runes.
func Decompose(r rune) (s Syllable, ok bool) {
	if !IsHangul(r) {
		return Syllable{}, false
	}
	off := int(r - base)
	return Syllable{
		Initial: off / syllPerIni,
		Medial:  (off % syllPerIni) / finalCnt,
		Final:   off % finalCnt,
	}, true
}

// Compose builds the syllable rune.
func Compose(s Syllable) rune {
	return rune(base + s.Initial*syllPerIni + s.Medial*finalCnt + s.Final)
}

// LastSyllable returns the final rune of word if it is Hangul.
func LastSyllable(word string) (Syllable, bool) {
	r, _ := utf8.DecodeLastRuneInString(strings.TrimSpace(word))
	return Decompose(r)
}

// HasBatchim reports whether word ends in a consonant. Non-Hangul endings
// are judged by a rough reading of their last letter so that loanwords
// written in Latin script still take a sensible particle.
func HasBatchim(word string) bool {
	if s, ok := LastSyllable(word); ok {
		return s.Final != FinalNone
	}
	r, _ := utf8.DecodeLastRuneInString(strings.TrimSpace(word))
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return false
	case 0, utf8.RuneError:
		return false
	}
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// EndsInL reports whether word's last syllable has ㄹ as its final.
func EndsInL(word string) bool {
	s, ok := LastSyllable(word)
	return ok && s.Final == FinalL
}

// ReplaceLast swaps the final syllable of word for s.
func ReplaceLast(word string, s Syllable) string {
	_, size := utf8.DecodeLastRuneInString(word)
	return word[:len(word)-size] + string(Compose(s))
}

// WithFinal returns word with its last syllable's final consonant set to
// final. Non-Hangul input is returned unchanged.
func WithFinal(word string, final int) string {
	s, ok := LastSyllable(word)
	if !ok {
		return word
	}
	s.Final = final
	return ReplaceLast(word, s)
}

// particles maps each written pair to its (after-consonant, after-vowel) forms.
var particles = map[string][2]string{
	"을/를":   {"을", "를"},
	"를/을":   {"을", "를"},
	"이/가":   {"이", "가"},
	"가/이":   {"이", "가"},
	"은/는":   {"은", "는"},
	"는/은":   {"은", "는"},
	"과/와":   {"과", "와"},
	"와/과":   {"과", "와"},
	"아/야":   {"아", "야"},
	"이랑/랑":  {"이랑", "랑"},
	"으로/로":  {"으로", "로"},
	"로/으로":  {"으로", "로"},
	"이에요/예요": {"이에요", "예요"},
}

// ParticlePairs lists the recognized written pairs, longest first so that
// prefix matching prefers "으로/로" over shorter pairs.
func ParticlePairs() []string {
	out := make([]string, 0, len(particles))
	for k := range particles {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// Particle picks the allomorph of pair for a word. ㄹ-final words take 로
// rather than 으로. Unknown pairs are returned unchanged.
func Particle(word, pair string) string {
	forms, ok := particles[pair]
	if !ok {
		return pair
	}
	if forms[0] == "으로" && EndsInL(word) {
		return forms[1]
	}
	if HasBatchim(word) {
		return forms[0]
	}
	return forms[1]
}
