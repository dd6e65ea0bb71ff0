// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sentence-engine/internal/pack"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Inspect vocabulary and pattern packs",
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded packs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		packs, err := pack.LoadAll(context.Background(), cfg.Packs)
		if err != nil {
			return err
		}

		summaries := make([]pack.Summary, len(packs))
		for i, p := range packs {
			summaries[i] = pack.Summarize(p)
		}

		w := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}

		fmt.Fprintf(w, "%-12s  %-8s  %-8s  %-30s  %s\n", "Name", "Lexemes", "Patterns", "Parts of speech", "Source")
		fmt.Fprintln(w, strings.Repeat("-", 90))
		for _, s := range summaries {
			fmt.Fprintf(w, "%-12s  %-8d  %-8d  %-30s  %s\n", s.Name, s.Lexemes, s.Patterns, posSummary(s.ByPOS), s.Source)
		}
		return nil
	},
}

var packCheckCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Report data-quality problems in packs",
	Long: `Check loads the configured packs, or only the given files, and reports
placeholder mismatches, unusable lexemes, duplicate ids, unknown semantic
categories and required slots no lexeme can fill. With --strict any warning
fails the command.`,
	RunE: runPackCheck,
}

func runPackCheck(cmd *cobra.Command, args []string) error {
	var packs []*pack.Pack
	if len(args) > 0 {
		for _, f := range args {
			p, err := pack.Load(f)
			if err != nil {
				return err
			}
			packs = append(packs, p)
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if packs, err = pack.LoadAll(context.Background(), cfg.Packs); err != nil {
			return err
		}
	}

	warnings := pack.Check(packs...)
	w := cmd.OutOrStdout()
	for _, wn := range warnings {
		fmt.Fprintln(w, wn)
	}
	fmt.Fprintf(w, "%d pack(s), %d warning(s)\n", len(packs), len(warnings))

	if strict, _ := cmd.Flags().GetBool("strict"); strict && len(warnings) > 0 {
		return fmt.Errorf("%d warning(s)", len(warnings))
	}
	return nil
}

func posSummary(byPOS map[string]int) string {
	keys := make([]string, 0, len(byPOS))
	for k := range byPOS {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, byPOS[k])
	}
	return strings.Join(parts, " ")
}

func init() {
	packListCmd.Flags().Bool("json", false, "output as JSON")
	packCheckCmd.Flags().Bool("strict", false, "exit non-zero when any warning is reported")

	packCmd.AddCommand(packListCmd)
	packCmd.AddCommand(packCheckCmd)

	rootCmd.AddCommand(packCmd)
}
