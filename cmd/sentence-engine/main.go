// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sentence-engine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/sentence-engine/internal/pack"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE from --verbose.
var logger = zap.NewNop()

// rootCmd is the base command for the sentence-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "sentence-engine",
	Short: "Rule-based English and Korean practice sentence generator",
	Long: `sentence-engine builds parallel English and Korean sentences from
vocabulary and pattern packs. Patterns are templates with typed slots; the
engine fills them with lexemes, conjugates verbs in both languages, attaches
Korean particles and filters out semantically odd combinations.

Built-in packs cover directions, school, business and daily life. Extra
packs are YAML files in the directories listed under packs.dirs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return nil
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zc.Encoding = "console"
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sentence-engine.yaml or ~/.config/sentence-engine/sentence-engine.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().StringSlice("pack-dir", nil, "additional pack directory (repeatable)")
	rootCmd.PersistentFlags().Bool("no-builtin", false, "skip the built-in packs")

	viper.BindPFlag("packs.dirs", rootCmd.PersistentFlags().Lookup("pack-dir"))
	viper.BindPFlag("packs.skip_builtin", rootCmd.PersistentFlags().Lookup("no-builtin"))
	setDefaults()
}

// setDefaults registers every config key so SENTENCE_ENGINE_* variables
// reach viper.Unmarshal.
func setDefaults() {
	viper.SetDefault("engine.limit", types.DefaultLimit)
	viper.SetDefault("engine.max_combinations", types.DefaultMaxCombinations)
	viper.SetDefault("engine.max_per_schema", types.DefaultMaxPerSchema)
	viper.SetDefault("engine.denylist", []string{})
	viper.SetDefault("history.dir", "history")
	viper.SetDefault("history.max_results", types.DefaultHistoryResults)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sentence-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sentence-engine"))
		}
	}

	viper.SetEnvPrefix("SENTENCE_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged viper settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// loadCatalog reads the configured packs and merges them.
func loadCatalog(ctx context.Context, cfg types.Config) ([]*pack.Pack, *pack.Catalog, error) {
	packs, err := pack.LoadAll(ctx, cfg.Packs)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range pack.Check(packs...) {
		logger.Warn("pack warning", zap.String("pack", w.Pack), zap.String("item", w.Item), zap.String("message", w.Message))
	}
	cat := pack.Apply(packs...)
	logger.Debug("packs loaded",
		zap.Int("packs", len(packs)),
		zap.Int("lexemes", cat.Lexicon.Len()),
		zap.Int("patterns", cat.Registry.Len()))
	return packs, cat, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
