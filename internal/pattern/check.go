// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pattern

import (
	"fmt"
	"strings"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

// Warning is a data-quality finding about one pattern. Warnings never stop
// registration; a broken pattern simply fails to bind later.
type Warning struct {
	SchemaID string `json:"schema_id" yaml:"schema_id"`
	Message  string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.SchemaID, w.Message)
}

// Check reports placeholder/slot mismatches between the two surfaces and
// the slot list.
func Check(p types.PatternSchema) []Warning {
	var out []Warning
	warn := func(format string, args ...any) {
		out = append(out, Warning{SchemaID: p.ID, Message: fmt.Sprintf(format, args...)})
	}

	if p.ID == "" {
		warn("missing id")
	}
	if strings.TrimSpace(p.Surface) == "" {
		warn("empty surface")
	}
	if strings.TrimSpace(p.KoSurface) == "" {
		warn("empty ko_surface")
	}

	en := Parse(p.Surface)
	ko := Parse(p.KoSurface)

	declared := make(map[string]bool, len(p.Slots))
	for _, s := range p.Slots {
		name := strings.ToUpper(s.Name)
		if declared[name] {
			warn("slot %s declared twice", name)
		}
		declared[name] = true

		if len(s.Accept) == 0 {
			warn("slot %s accepts no part of speech", name)
		}
		for _, pos := range s.Accept {
			if !pos.Valid() {
				warn("slot %s accepts unknown part of speech %q", name, pos)
			}
		}
		if !en.HasSlot(name) {
			warn("slot %s does not appear in surface", name)
		}
		if p.KoSurface != "" && !ko.HasSlot(name) {
			warn("slot %s does not appear in ko_surface", name)
		}
	}

	for _, name := range en.Slots() {
		if !declared[name] {
			warn("surface placeholder [%s] has no slot", name)
		}
	}
	for _, name := range ko.Slots() {
		if !declared[name] {
			warn("ko_surface placeholder [%s] has no slot", name)
		}
	}
	return out
}
