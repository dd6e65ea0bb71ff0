// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"errors"
	"strings"

	"github.com/pdiddy/sentence-engine/internal/assemble"
	"github.com/pdiddy/sentence-engine/internal/slot"
	"github.com/pdiddy/sentence-engine/internal/validate"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// choice is one option for a slot. ok is false for an optional slot left
// empty.
type choice struct {
	lx types.Lexeme
	ok bool
}

// expand walks slot combinations of schema in odometer order (last slot
// fastest) and returns up to want accepted sentences. At most
// MaxCombinations combinations are considered. seen holds the English
// texts already emitted in this call.
func (r *run) expand(schema types.PatternSchema, res *slot.Resolver, want int, seen map[string]bool) []types.GeneratedSentence {
	budget := r.e.cfg.MaxCombinations
	options := make([][]choice, len(schema.Slots))
	for i, spec := range schema.Slots {
		for _, lx := range res.Candidates(spec, nil) {
			if len(options[i]) == budget {
				break
			}
			options[i] = append(options[i], choice{lx: lx, ok: true})
		}
		if len(options[i]) == 0 {
			// Only optional slots get here; precheck covers required ones.
			options[i] = []choice{{}}
		}
	}

	var out []types.GeneratedSentence
	idx := make([]int, len(options))
	for tried := 0; tried < budget && len(out) < want; tried++ {
		combo := make([]choice, len(options))
		for i, o := range options {
			combo[i] = o[idx[i]]
		}
		if s, ok := r.try(schema, combo, seen); ok {
			seen[s.Text] = true
			out = append(out, s)
		}
		if !advance(idx, options) {
			break
		}
	}
	return out
}

// advance moves idx to the next combination and reports false once every
// combination has been visited.
func advance(idx []int, options [][]choice) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(options[i]) {
			return true
		}
		idx[i] = 0
	}
	return false
}

// try binds, inflects, assembles and validates one combination.
func (r *run) try(schema types.PatternSchema, combo []choice, seen map[string]bool) (types.GeneratedSentence, bool) {
	used := make(map[string]bool, len(combo))
	bindings := make(map[string]assemble.Binding, len(combo))
	bound := make([]validate.Bound, 0, len(combo))
	ids := make([]string, 0, len(combo))

	for i, c := range combo {
		if !c.ok {
			continue
		}
		spec := schema.Slots[i]
		if used[c.lx.ID] {
			r.reject(schema.ID, types.StageBind, "lexeme used twice", spec.Name+"="+c.lx.ID)
			return types.GeneratedSentence{}, false
		}
		used[c.lx.ID] = true

		b := r.e.inflect(spec, c.lx)
		bindings[strings.ToUpper(spec.Name)] = b
		bound = append(bound, validate.Bound{Slot: spec, Lexeme: c.lx, Surface: b.En})
		ids = append(ids, c.lx.ID)
	}

	sent, err := r.e.asm.Assemble(schema, bindings)
	if err != nil {
		r.reject(schema.ID, types.StageAssemble, "assembly failed", err.Error())
		return types.GeneratedSentence{}, false
	}
	if err := r.e.val.Validate(schema, bound, sent.En); err != nil {
		r.reject(schema.ID, types.StageValidate, reason(err), err.Error())
		return types.GeneratedSentence{}, false
	}
	if seen[sent.En] {
		r.reject(schema.ID, types.StageDedupe, "duplicate text", sent.En)
		return types.GeneratedSentence{}, false
	}

	return types.GeneratedSentence{
		Text:          sent.En,
		Korean:        sent.Ko,
		UsedLexemeIDs: ids,
		SchemaID:      schema.ID,
		Category:      schema.Category,
		Level:         schema.Level,
	}, true
}

// inflect produces the surface forms of lx for spec. Verbs take the slot's
// morphology in both languages; nominals may be pluralized in English.
func (e *Engine) inflect(spec types.SlotSpec, lx types.Lexeme) assemble.Binding {
	b := assemble.Binding{Lexeme: lx, En: lx.En, Ko: lx.Ko}
	switch {
	case lx.POS == types.POSVerb:
		b.En = e.en.Inflect(lx.En, spec.Morph)
		b.Ko = e.ko.Inflect(lx.Ko, spec.Morph)
	case lx.POS.Nominal() && spec.Number == types.Plural:
		b.En = e.en.PluralizeLexeme(lx)
	}
	return b
}

func reason(err error) string {
	switch {
	case errors.Is(err, validate.ErrUnfilled):
		return "unfilled placeholder"
	case errors.Is(err, validate.ErrForbiddenPair):
		return "forbidden verb-object pair"
	case errors.Is(err, validate.ErrPlaceAffinity):
		return "place not valid for activity"
	}
	return "invalid"
}
