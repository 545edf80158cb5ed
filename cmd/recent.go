// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/history"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
)

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	recentCmd.SetOut(os.Stdout)
}

// recentCmd displays the recently used colors, most recent first.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Display recently used colors",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.All()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No recent colors. Parse one first, e.g. \"huekit convert teal\"."))
			return
		}

		for _, record := range records {
			c, err := record.Color()
			if err != nil {
				continue
			}

			line := swatch.Line(c)
			if record.Name != "" {
				line += " " + record.Name
			}
			cmd.Println(line)
		}
	},
}
