// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
)

// representations lists the supported conversion targets.
var representations = []string{"hex", "rgb", "hsl", "hsv", "all"}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "all", "Target representation (hex, rgb, hsl, hsv, all)")
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return representations, cobra.ShellCompDirectiveNoFileComp
	}))
	convertCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")

	convertCmd.SetOut(os.Stdout)
}

// convertOutput is the structured representation emitted in JSON mode.
type convertOutput struct {
	Hex       string    `json:"hex" jsonschema:"description=Lowercase hex notation of the color."`
	RGB       color.RGB `json:"rgb" jsonschema:"description=Red, green and blue channels in [0,255]."`
	HSL       color.HSL `json:"hsl" jsonschema:"description=Hue in degrees, saturation and lightness in percent."`
	HSV       color.HSV `json:"hsv" jsonschema:"description=Hue in degrees, saturation and value in percent."`
	Luminance float64   `json:"luminance" jsonschema:"description=Perceptual luminance in [0,1]."`
	Light     bool      `json:"light" jsonschema:"description=Whether the color reads as light against dark text."`
}

// convertCmd translates a color literal between representations.
var convertCmd = &cobra.Command{
	Use:   "convert [color]",
	Short: "Translate a color between hex, rgb, hsl and hsv representations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			target = lo.Must(cmd.Flags().GetString("to"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			c      = parseColor(args[0])
		)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(convertOutput{
				Hex:       c.Hex(),
				RGB:       c.RGB(),
				HSL:       c.HSL(),
				HSV:       c.HSV(),
				Luminance: c.RGB().Luminance(),
				Light:     c.IsLight(),
			}))
			return
		}

		label := style.Fg(style.ANSIBlue)

		switch target {
		case "hex":
			cmd.Println(c.Hex())
		case "rgb":
			rgb := c.RGB()
			cmd.Printf("rgb(%d, %d, %d)\n", rgb.R, rgb.G, rgb.B)
		case "hsl":
			cmd.Println(c.HSL().CSS())
		case "hsv":
			hsv := c.HSV()
			cmd.Printf("hsv(%d, %d%%, %d%%)\n", hsv.H, hsv.S, hsv.V)
		case "all":
			rgb := c.RGB()
			hsv := c.HSV()

			cmd.Println(swatch.Line(c))
			cmd.Printf("%s %s\n", label("rgb:"), fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B))
			cmd.Printf("%s %s\n", label("hsl:"), c.HSL().CSS())
			cmd.Printf("%s %s\n", label("hsv:"), fmt.Sprintf("hsv(%d, %d%%, %d%%)", hsv.H, hsv.S, hsv.V))
		default:
			handleErr(fmt.Errorf("unknown representation %s, expected one of hex, rgb, hsl, hsv, all", target))
		}
	},
}
