// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type idiom struct {
	re   *regexp.Regexp
	repl string
}

// defaultIdioms fix article use that is correct in general but wrong in
// fixed expressions.
var defaultIdioms = []idiom{
	{regexp.MustCompile(`(?i)\b(go|goes|went|gone|going|come|comes|came|coming|get|gets|got|getting) to the home\b`), "$1 home"},
	{regexp.MustCompile(`(?i)\bat the (work|home)\b`), "at $1"},
	{regexp.MustCompile(`(?i)\b(go|goes|went|gone|going) to the (bed|work)\b`), "$1 to $2"},
	{regexp.MustCompile(`(?i)\bby the (bus|subway|taxi|train|car|bike)\b`), "by $1"},
}

var (
	spaceRun        = regexp.MustCompile(`\s+`)
	spaceBeforePunc = regexp.MustCompile(`\s+([.,!?;:])`)
	articleWord     = regexp.MustCompile(`\b([Aa]n?) ([A-Za-z][A-Za-z'-]*)`)
)

// NaturalizeEnglish tidies spacing, applies idiom fixups, corrects a/an and
// capitalizes the first letter.
func (a *Assembler) NaturalizeEnglish(s string) string {
	s = tidy(s)
	for _, id := range a.idioms {
		s = id.re.ReplaceAllString(s, id.repl)
	}
	s = fixArticles(s)
	return capitalize(s)
}

// NaturalizeKorean tidies spacing.
func NaturalizeKorean(s string) string {
	return tidy(s)
}

func tidy(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = spaceBeforePunc.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func fixArticles(s string) string {
	return articleWord.ReplaceAllStringFunc(s, func(m string) string {
		parts := articleWord.FindStringSubmatch(m)
		art, word := parts[1], parts[2]
		want := "a"
		if VowelSound(word) {
			want = "an"
		}
		if art[0] == 'A' {
			want = strings.ToUpper(want[:1]) + want[1:]
		}
		return want + " " + word
	})
}

// consonantVowelPrefixes start with a vowel letter but a consonant sound.
var consonantVowelPrefixes = []string{"uni", "use", "usu", "uti", "eu", "one", "once"}

// silentH words start with h but a vowel sound.
var silentH = []string{"hour", "honest", "honor", "honour", "heir"}

// vowelLetterNames are the capital letters whose spoken name starts with a
// vowel sound (an F, an X-ray, an MRI).
const vowelLetterNames = "AEFHILMNORSX"

// VowelSound reports whether word begins with a vowel sound. Words read
// letter by letter (a single capital, a capital before a hyphen as in
// "U-turn", or an all-caps word of up to three letters such as "ATM") go by
// the name of their first letter. Longer acronyms spoken as words (NASA)
// and numerals are not recognized.
func VowelSound(word string) bool {
	if spelledOut(word) {
		return strings.IndexByte(vowelLetterNames, word[0]) >= 0
	}
	w := strings.ToLower(word)
	if w == "" {
		return false
	}
	for _, p := range silentH {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	if !strings.ContainsRune("aeiou", rune(w[0])) {
		return false
	}
	for _, p := range consonantVowelPrefixes {
		if strings.HasPrefix(w, p) {
			return false
		}
	}
	return true
}

// spelledOut reports whether word is read as letter names.
func spelledOut(word string) bool {
	if word == "" || !isUpper(word[0]) {
		return false
	}
	if len(word) == 1 || word[1] == '-' {
		return true
	}
	if len(word) > 3 {
		return false
	}
	for i := 1; i < len(word); i++ {
		if !isUpper(word[i]) {
			return false
		}
	}
	return true
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			if unicode.IsUpper(r) {
				return s
			}
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}
