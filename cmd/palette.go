// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/generator"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/palette"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
)

// builtinSchemes maps scheme names to palette derivations parameterized by the command flags.
var builtinSchemes = map[string]func(cmd *cobra.Command, base color.Color) ([]color.Color, error){
	"analogous": func(cmd *cobra.Command, base color.Color) ([]color.Color, error) {
		return palette.Analogous(base, flagOr(cmd, "count", key.PaletteCount), flagOr(cmd, "spread", key.PaletteSpread)), nil
	},
	"complementary": func(_ *cobra.Command, base color.Color) ([]color.Color, error) {
		return palette.Complementary(base), nil
	},
	"triadic": func(_ *cobra.Command, base color.Color) ([]color.Color, error) {
		return palette.Triadic(base), nil
	},
	"split-complementary": func(cmd *cobra.Command, base color.Color) ([]color.Color, error) {
		return palette.SplitComplementary(base, flagOr(cmd, "spread", key.PaletteSpread)), nil
	},
	"monochromatic": func(cmd *cobra.Command, base color.Color) ([]color.Color, error) {
		return palette.Monochromatic(base, flagOr(cmd, "count", key.PaletteCount))
	},
	"gradient": func(cmd *cobra.Command, base color.Color) ([]color.Color, error) {
		to := lo.Must(cmd.Flags().GetString("to"))
		if to == "" {
			return nil, errors.New("gradient requires an end color, pass it with --to")
		}
		return palette.Gradient(base, parseColor(to), flagOr(cmd, "steps", key.PaletteSteps)), nil
	},
}

// flagOr resolves an integer flag, deferring to the configured default when unset.
func flagOr(cmd *cobra.Command, flag, configKey string) int {
	if cmd.Flags().Changed(flag) {
		return lo.Must(cmd.Flags().GetInt(flag))
	}
	return viper.GetInt(configKey)
}

// schemeNames lists every available scheme, builtin and custom.
func schemeNames() []string {
	names := lo.Keys(builtinSchemes)

	generators, err := generator.LoadAll()
	if err == nil {
		for _, g := range generators {
			names = append(names, g.Name())
		}
	}

	return names
}

func errUnknownScheme(name string) error {
	closest := lo.MinBy(schemeNames(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown scheme %s, did you mean %s?",
		style.Fg(style.ANSIRed)(name),
		style.Fg(style.ANSIYellow)(closest),
	)
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntP("count", "c", 0, "Number of colors to derive")
	paletteCmd.Flags().IntP("spread", "s", 0, "Hue spread in degrees between neighbors")
	paletteCmd.Flags().IntP("steps", "n", 0, "Number of gradient steps")
	paletteCmd.Flags().StringP("to", "t", "", "End color for gradients")
	paletteCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")

	paletteCmd.SetOut(os.Stdout)
}

// paletteOutput is the structured representation emitted in JSON mode.
type paletteOutput struct {
	Scheme string   `json:"scheme" jsonschema:"description=Name of the scheme used to derive the palette."`
	Base   string   `json:"base" jsonschema:"description=Hex notation of the base color."`
	Colors []string `json:"colors" jsonschema:"description=Derived palette in hex notation, first to last swatch."`
}

// paletteCmd derives a palette from a base color using a builtin or custom scheme.
var paletteCmd = &cobra.Command{
	Use:   "palette [scheme] [color]",
	Short: "Derive a color palette from a base color",
	Long: "Derive a color palette from a base color.\n" +
		"Builtin schemes: analogous, complementary, triadic, split-complementary, monochromatic, gradient.\n" +
		"Custom Lua generator scripts are addressed by their script name.",
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return schemeNames(), cobra.ShellCompDirectiveNoFileComp
		}
		return color.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			scheme = args[0]
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		base := promptBase(cmd, args)
		colors := derive(cmd, scheme, base)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(paletteOutput{
				Scheme: scheme,
				Base:   base.Hex(),
				Colors: lo.Map(colors, func(c color.Color, _ int) string { return c.Hex() }),
			}))
			return
		}

		cmd.Println(swatch.Strip(colors))
		for _, c := range colors {
			cmd.Println(swatch.Line(c))
		}
	},
}

// promptBase resolves the base color from the arguments, falling back to an interactive prompt.
func promptBase(_ *cobra.Command, args []string) color.Color {
	if len(args) == 2 {
		return parseColor(args[1])
	}

	input := survey.Input{
		Message: "Base color:",
		Help:    "Hex, rgb(), hsl() or a named color",
		Suggest: func(toComplete string) []string {
			return lo.Filter(color.Names(), func(name string, _ int) bool {
				return toComplete == "" || len(name) >= len(toComplete) && name[:len(toComplete)] == toComplete
			})
		},
	}

	var response string
	handleErr(survey.AskOne(&input, &response, survey.WithValidator(survey.Required)))

	return parseColor(response)
}

// derive resolves the scheme by name and applies it to the base color.
func derive(cmd *cobra.Command, scheme string, base color.Color) []color.Color {
	if builtin, ok := builtinSchemes[scheme]; ok {
		colors, err := builtin(cmd, base)
		handleErr(err)
		return colors
	}

	generators, err := generator.LoadAll()
	handleErr(err)

	for _, g := range generators {
		if g.Name() == scheme {
			colors, err := g.Generate(base)
			handleErr(err)
			return colors
		}
	}

	handleErr(errUnknownScheme(scheme))
	return nil
}
