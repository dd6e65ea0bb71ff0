// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sentence-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Search, export and prune saved sentences",
	Long: `History manages the local SQLite archive written by generate --save.
English and Korean text are indexed for full-text search.`,
}

// --- search subcommand ---

var historySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search saved sentences with full-text search and filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		opts := historyOptsFromFlags(cmd, args)
		if opts.IsEmpty() {
			return fmt.Errorf("query or filter required: provide a search query, --schema, --category or --request")
		}
		results, err := store.Retrieve(context.Background(), opts)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		if len(results) == 0 {
			fmt.Fprintln(w, "No results found.")
			return nil
		}
		for i, r := range results {
			fmt.Fprintf(w, "%2d. %s\n    %s\n    [%s, %s]\n", i+1, r.Text, r.Korean, r.SchemaID, r.CreatedAt)
		}
		fmt.Fprintf(w, "\n%d results\n", len(results))
		return nil
	},
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved sentences to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		opts := historyOptsFromFlags(cmd, args)
		var path string
		switch format {
		case "yaml", "":
			path, err = store.ExportYAML(context.Background(), opts)
		case "json":
			path, err = store.ExportJSON(context.Background(), opts)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Exported to", path)
		return nil
	},
}

// --- prune subcommand ---

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete saved sentences older than a duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetDuration("older-than")
		if age <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Prune(context.Background(), time.Now().Add(-age))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d sentence(s)\n", n)
		return nil
	},
}

// --- shared helpers ---

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("history-dir"); dir != "" {
		cfg.History.Dir = dir
	}
	return history.NewStore(cfg.History)
}

func historyOptsFromFlags(cmd *cobra.Command, args []string) history.QueryOptions {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	schemaID, _ := cmd.Flags().GetString("schema")
	category, _ := cmd.Flags().GetString("category")
	requestID, _ := cmd.Flags().GetString("request")
	limit, _ := cmd.Flags().GetInt("limit")

	return history.QueryOptions{
		Query:      query,
		SchemaID:   schemaID,
		Category:   category,
		RequestID:  requestID,
		MaxResults: limit,
	}
}

func init() {
	historyCmd.PersistentFlags().String("history-dir", "", "history directory (default from config, then ./history)")

	for _, c := range []*cobra.Command{historySearchCmd, historyExportCmd} {
		c.Flags().String("query", "", "full-text search query")
		c.Flags().String("schema", "", "filter by pattern id")
		c.Flags().String("category", "", "filter by pattern category")
		c.Flags().String("request", "", "filter by request id")
	}
	historySearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	historySearchCmd.Flags().Bool("json", false, "output results as JSON")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "age of sentences to delete")

	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyPruneCmd)

	rootCmd.AddCommand(historyCmd)
}
