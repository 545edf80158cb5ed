// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/swatch"
)

// adjustment binds a perceptual manipulation to its CLI surface.
type adjustment struct {
	use, short string
	amountable bool
	apply      func(c color.Color, amount int) color.Color
}

// adjustments registry of all single-color manipulations exposed as commands.
var adjustments = []adjustment{
	{
		use:        "lighten",
		short:      "Raise the lightness of a color",
		amountable: true,
		apply:      func(c color.Color, amount int) color.Color { return c.Lighten(amount) },
	},
	{
		use:        "darken",
		short:      "Lower the lightness of a color",
		amountable: true,
		apply:      func(c color.Color, amount int) color.Color { return c.Darken(amount) },
	},
	{
		use:        "saturate",
		short:      "Raise the saturation of a color",
		amountable: true,
		apply:      func(c color.Color, amount int) color.Color { return c.Saturate(amount) },
	},
	{
		use:        "desaturate",
		short:      "Lower the saturation of a color",
		amountable: true,
		apply:      func(c color.Color, amount int) color.Color { return c.Desaturate(amount) },
	},
	{
		use:   "invert",
		short: "Invert every channel of a color",
		apply: func(c color.Color, _ int) color.Color { return c.Invert() },
	},
	{
		use:   "grayscale",
		short: "Collapse a color to its luminance gray",
		apply: func(c color.Color, _ int) color.Color { return c.Grayscale() },
	},
	{
		use:   "complement",
		short: "Rotate the hue of a color by 180 degrees",
		apply: func(c color.Color, _ int) color.Color { return c.Complement() },
	},
}

func init() {
	for _, a := range adjustments {
		a := a

		cmd := &cobra.Command{
			Use:   a.use + " [color]",
			Short: a.short,
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				amount := viper.GetInt(key.AdjustAmount)
				if a.amountable && cmd.Flags().Changed("amount") {
					amount = lo.Must(cmd.Flags().GetInt("amount"))
				}

				result := a.apply(parseColor(args[0]), amount)
				cmd.Println(swatch.Line(result))
			},
		}

		if a.amountable {
			cmd.Flags().IntP("amount", "a", color.DefaultAmount, "Adjustment amount in percentage points")
		}

		cmd.SetOut(rootCmd.OutOrStdout())
		rootCmd.AddCommand(cmd)
	}
}
