// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sentence-engine/internal/inflect"
	"github.com/pdiddy/sentence-engine/pkg/types"
)

var inflectCmd = &cobra.Command{
	Use:   "inflect",
	Short: "Conjugate verbs and pluralize nouns",
	Long: `Inflect exposes the English and Korean inflectors for checking how a
pack entry will render. Feature flags left empty use the unmarked value.`,
}

var inflectEnCmd = &cobra.Command{
	Use:   "en <verb>",
	Short: "Conjugate an English verb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := featuresFromFlags(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), inflect.NewEnglish().Inflect(args[0], f))
		return nil
	},
}

var inflectKoCmd = &cobra.Command{
	Use:   "ko <verb>",
	Short: "Conjugate a Korean verb given in dictionary form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := featuresFromFlags(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), inflect.NewKorean().Inflect(args[0], f))
		return nil
	},
}

var inflectPluralCmd = &cobra.Command{
	Use:   "plural <noun>",
	Short: "Pluralize an English noun",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), inflect.NewEnglish().Pluralize(args[0], ""))
	},
}

func featuresFromFlags(cmd *cobra.Command) (types.VerbFeatures, error) {
	tense, _ := cmd.Flags().GetString("tense")
	aspect, _ := cmd.Flags().GetString("aspect")
	person, _ := cmd.Flags().GetString("person")
	number, _ := cmd.Flags().GetString("number")
	negative, _ := cmd.Flags().GetBool("negative")

	f := types.VerbFeatures{
		Tense:  types.Tense(tense),
		Aspect: types.Aspect(aspect),
		Person: types.Person(person),
		Number: types.Number(number),
	}
	if negative {
		f.Polarity = types.Negative
	}

	switch f.Tense {
	case "", types.TensePresent, types.TensePast, types.TenseFuture:
	default:
		return f, fmt.Errorf("unsupported tense %q: use present, past or future", tense)
	}
	switch f.Aspect {
	case "", types.AspectSimple, types.AspectProgressive, types.AspectPerfect:
	default:
		return f, fmt.Errorf("unsupported aspect %q: use simple, progressive or perfect", aspect)
	}
	switch f.Person {
	case "", types.FirstPerson, types.SecondPerson, types.ThirdPerson:
	default:
		return f, fmt.Errorf("unsupported person %q: use first, second or third", person)
	}
	switch f.Number {
	case "", types.Singular, types.Plural:
	default:
		return f, fmt.Errorf("unsupported number %q: use singular or plural", number)
	}
	return f, nil
}

func init() {
	for _, c := range []*cobra.Command{inflectEnCmd, inflectKoCmd} {
		c.Flags().String("tense", "", "present, past or future")
		c.Flags().String("aspect", "", "simple, progressive or perfect")
		c.Flags().String("person", "", "first, second or third")
		c.Flags().String("number", "", "singular or plural")
		c.Flags().Bool("negative", false, "negative polarity")
	}

	inflectCmd.AddCommand(inflectEnCmd)
	inflectCmd.AddCommand(inflectKoCmd)
	inflectCmd.AddCommand(inflectPluralCmd)

	rootCmd.AddCommand(inflectCmd)
}
