// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern parses pattern surface strings into token sequences and
// checks pattern definitions for data-quality problems.
//
// A surface such as "Where is the [PLACE]?" becomes
// Literal("Where is the ") Slot("PLACE") Literal("?"). Rendering walks the
// tokens, so an unbound slot is detected structurally instead of by scanning
// the output for leftover markers. The legacy {{name}} marker is accepted too.
package pattern

import "strings"

// TokenKind discriminates the two token variants.
type TokenKind int

const (
	Literal TokenKind = iota
	Slot
)

// Token is either literal text or a reference to a slot by name.
type Token struct {
	Kind TokenKind
	// Text is the literal text, or the upper-cased slot name.
	Text string
}

// Template is a parsed surface string.
type Template []Token

// Parse splits surface into literal and slot tokens. Brackets that do not
// enclose a valid slot name stay literal.
func Parse(surface string) Template {
	var (
		out Template
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(surface); {
		if name, n, ok := slotAt(surface[i:]); ok {
			flush()
			out = append(out, Token{Kind: Slot, Text: name})
			i += n
			continue
		}
		lit.WriteByte(surface[i])
		i++
	}
	flush()
	return out
}

// slotAt reports whether s begins with a slot marker and returns the
// normalized name and the marker length.
func slotAt(s string) (string, int, bool) {
	var open, close string
	switch {
	case strings.HasPrefix(s, "{{"):
		open, close = "{{", "}}"
	case strings.HasPrefix(s, "["):
		open, close = "[", "]"
	default:
		return "", 0, false
	}
	end := strings.Index(s[len(open):], close)
	if end <= 0 {
		return "", 0, false
	}
	name := strings.TrimSpace(s[len(open) : len(open)+end])
	if !validName(name) {
		return "", 0, false
	}
	return strings.ToUpper(name), len(open) + end + len(close), true
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Slots returns the slot names in order of first appearance.
func (t Template) Slots() []string {
	var names []string
	seen := make(map[string]bool)
	for _, tok := range t {
		if tok.Kind == Slot && !seen[tok.Text] {
			seen[tok.Text] = true
			names = append(names, tok.Text)
		}
	}
	return names
}

// HasSlot reports whether name occurs in the template.
func (t Template) HasSlot(name string) bool {
	for _, tok := range t {
		if tok.Kind == Slot && tok.Text == name {
			return true
		}
	}
	return false
}

// LiteralText returns the concatenated literal tokens.
func (t Template) LiteralText() string {
	var b strings.Builder
	for _, tok := range t {
		if tok.Kind == Literal {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
