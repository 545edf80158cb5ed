// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"fmt"
	"os"
	"os/user"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/generator"
	"github.com/huekit-cli/huekit/style"
)

func init() {
	rootCmd.AddCommand(generatorsCmd)
}

// generatorsCmd serves as the parent command for managing custom Lua palette generators.
var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "Manage custom Lua palette generator scripts",
}

func init() {
	generatorsCmd.AddCommand(generatorsListCmd)

	generatorsListCmd.Flags().BoolP("raw", "r", false, "Suppress the header in the output")
	generatorsListCmd.SetOut(os.Stdout)
}

// generatorsListCmd displays all loadable custom generators.
var generatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all loadable custom generators",
	Run: func(cmd *cobra.Command, args []string) {
		generators, err := generator.LoadAll()
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Println(style.New().Foreground(style.ANSIBlue).Bold(true).Render("Custom:"))
		}

		for _, g := range generators {
			cmd.Println(g.Name())
		}
	},
}

func init() {
	generatorsCmd.AddCommand(generatorsNewCmd)
	generatorsNewCmd.SetOut(os.Stdout)
}

// generatorsNewCmd scaffolds a new custom generator script.
var generatorsNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new custom generator script",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		author := "unknown"
		if u, err := user.Current(); err == nil {
			author = u.Username
		}

		path, err := generator.Create(args[0], author)
		handleErr(err)

		cmd.Printf(
			"%s created %s\n",
			style.Fg(style.ANSIGreen)("✓"),
			path,
		)
		cmd.Println(style.Faint(fmt.Sprintf("Use it with \"huekit palette %s <color>\"", args[0])))
	},
}
