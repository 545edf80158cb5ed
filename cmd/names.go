// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/swatch"
)

func init() {
	rootCmd.AddCommand(namesCmd)

	namesCmd.Flags().BoolP("raw", "r", false, "Suppress swatches and hex values in the output")
	namesCmd.SetOut(os.Stdout)
}

// namesCmd displays the table of recognized color names.
var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Display the collection of recognized color names",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		for _, name := range color.Names() {
			if raw {
				cmd.Println(name)
				continue
			}

			rgb, ok := color.Lookup(name).Get()
			if !ok {
				continue
			}

			c := color.FromRGB(rgb)
			cmd.Printf("%s %s\n", swatch.Line(c), name)
		}
	},
}
