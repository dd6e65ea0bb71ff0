// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sentence-engine/internal/generate"
	"github.com/pdiddy/sentence-engine/internal/history"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate English and Korean sentence pairs",
	Long: `Generate fills the loaded patterns with vocabulary and prints the
resulting sentence pairs, best first.

Restrict the patterns with --schema or --tag. Free text (Korean or English)
given as arguments or --input is classified into tags and used to rank
sentences that reuse its words. --seed shuffles the vocabulary so repeated
runs vary; the same seed reproduces the same output.`,
	RunE: runGenerate,
}

// generateOutput is the --json document.
type generateOutput struct {
	Tags      []string                  `json:"tags,omitempty"`
	Sentences []types.GeneratedSentence `json:"sentences"`
	Trace     []types.TraceEntry        `json:"trace,omitempty"`
	RequestID string                    `json:"request_id,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if limit, _ := cmd.Flags().GetInt("max-combinations"); limit > 0 {
		cfg.Engine.MaxCombinations = limit
	}
	if perSchema, _ := cmd.Flags().GetInt("max-per-schema"); perSchema > 0 {
		cfg.Engine.MaxPerSchema = perSchema
	}

	_, cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	params := generateParamsFromFlags(cmd, args)
	engine := generate.New(cfg.Engine,
		generate.WithLogger(logger),
		generate.WithClassifier(cat.Classifier),
		generate.WithValidator(cat.Validator),
		generate.WithIntents(cat.Intents))

	res, err := engine.Run(cat.Lexicon, cat.Registry, params)
	if err != nil {
		return err
	}

	out := generateOutput{Tags: res.Tags, Sentences: res.Sentences}
	if withTrace, _ := cmd.Flags().GetBool("trace"); withTrace {
		out.Trace = res.Trace
	}

	if save, _ := cmd.Flags().GetBool("save"); save && len(res.Sentences) > 0 {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		out.RequestID, err = store.Save(ctx, history.Request{Input: params.UserInput, Tags: res.Tags}, res.Sentences)
		if err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		if out.Sentences == nil {
			out.Sentences = []types.GeneratedSentence{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	formatGenerateOutput(w, out)
	return nil
}

func generateParamsFromFlags(cmd *cobra.Command, args []string) types.GenerateParams {
	input, _ := cmd.Flags().GetString("input")
	if input == "" && len(args) > 0 {
		input = strings.Join(args, " ")
	}
	schemas, _ := cmd.Flags().GetStringSlice("schema")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	limit, _ := cmd.Flags().GetInt("limit")
	seed, _ := cmd.Flags().GetUint64("seed")

	p := types.GenerateParams{
		SchemaIDs: schemas,
		Tags:      tags,
		UserInput: input,
		Limit:     limit,
	}
	if seed != 0 {
		p.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	return p
}

func formatGenerateOutput(w io.Writer, out generateOutput) {
	if len(out.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n\n", strings.Join(out.Tags, ", "))
	}
	if len(out.Sentences) == 0 {
		fmt.Fprintln(w, "No sentences generated.")
	}
	for i, s := range out.Sentences {
		fmt.Fprintf(w, "%2d. %s\n    %s\n    [%s, %.2f]\n", i+1, s.Text, s.Korean, s.SchemaID, s.Confidence)
	}
	if len(out.Trace) > 0 {
		fmt.Fprintf(w, "\nRejected candidates (%d):\n", len(out.Trace))
		for _, t := range out.Trace {
			line := fmt.Sprintf("  %-24s %-9s %s", t.SchemaID, t.Stage, t.Reason)
			if t.Detail != "" {
				line += ": " + t.Detail
			}
			fmt.Fprintln(w, line)
		}
	}
	if out.RequestID != "" {
		fmt.Fprintf(w, "\nSaved as request %s\n", out.RequestID)
	}
}

func init() {
	generateCmd.Flags().StringSlice("schema", nil, "pattern ids to use (repeatable)")
	generateCmd.Flags().StringSlice("tag", nil, "pattern categories to use (repeatable)")
	generateCmd.Flags().String("input", "", "free-text intent in Korean or English")
	generateCmd.Flags().Int("limit", 0, "maximum sentences (0 = engine default)")
	generateCmd.Flags().Int("max-combinations", 0, "slot combinations tried per pattern (0 = config)")
	generateCmd.Flags().Int("max-per-schema", 0, "sentences accepted per pattern (0 = config)")
	generateCmd.Flags().Uint64("seed", 0, "shuffle vocabulary with this seed (0 = lexicon order)")
	generateCmd.Flags().Bool("save", false, "record the sentences in the history store")
	generateCmd.Flags().Bool("trace", false, "include rejected candidates")
	generateCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(generateCmd)
}
