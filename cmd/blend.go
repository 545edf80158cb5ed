// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/swatch"
)

func init() {
	rootCmd.AddCommand(blendCmd)

	blendCmd.Flags().Float64P("ratio", "r", 0.5, "Interpolation ratio toward the second color")
	blendCmd.SetOut(os.Stdout)
}

// blendCmd interpolates between two colors.
var blendCmd = &cobra.Command{
	Use:   "blend [color] [color]",
	Short: "Interpolate between two colors at a given ratio",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ratio = lo.Must(cmd.Flags().GetFloat64("ratio"))
			a     = parseColor(args[0])
			b     = parseColor(args[1])
		)

		cmd.Println(swatch.Line(a.Blend(b, ratio)))
	},
}
