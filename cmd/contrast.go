// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/style"
)

// WCAG 2.0 contrast thresholds for normal text.
const (
	contrastAA  = 4.5
	contrastAAA = 7.0
)

func init() {
	rootCmd.AddCommand(contrastCmd)
	contrastCmd.SetOut(os.Stdout)
}

// contrastCmd reports the WCAG contrast ratio between two colors.
var contrastCmd = &cobra.Command{
	Use:   "contrast [color] [color]",
	Short: "Report the WCAG contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			a = parseColor(args[0])
			b = parseColor(args[1])
		)

		ratio := a.ContrastRatio(b)

		verdict := func(threshold float64) string {
			if ratio >= threshold {
				return style.Fg(style.ANSIGreen)("pass")
			}
			return style.Fg(style.ANSIRed)("fail")
		}

		cmd.Printf("%.2f:1\n", ratio)
		cmd.Printf("%s %s\n", style.Faint("AA  (4.5:1)"), verdict(contrastAA))
		cmd.Printf("%s %s\n", style.Faint("AAA (7.0:1)"), verdict(contrastAAA))
	},
}
