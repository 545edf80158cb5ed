// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/constant"
	"github.com/huekit-cli/huekit/history"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/log"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
	"github.com/huekit-cli/huekit/tui"
	"github.com/huekit-cli/huekit/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("swatch", "w", "", "Set the swatch variant (e.g., block, dot, ascii, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("swatch", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return swatch.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.SwatchVariant, rootCmd.PersistentFlags().Lookup("swatch")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist parsed colors to the localized recent colors history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnParse, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the huekit application.
var rootCmd = &cobra.Command{
	Use:   constant.Huekit + " [color]",
	Short: "A minimalist command-line toolkit for color conversion and palette design",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.ANSICyan).Render("    - A minimalist command-line toolkit for color conversion and palette design"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{Base: mo.None[color.Color]()}
		if len(args) == 1 {
			options.Base = mo.Some(parseColor(args[0]))
		}

		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// parseColor normalizes a CLI color argument, recording it to the history on success.
func parseColor(s string) color.Color {
	c, err := color.FromString(s)
	handleErr(err)

	if err := history.Remember(c); err != nil {
		log.Warn(err)
	}

	return c
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ANSIRed)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
