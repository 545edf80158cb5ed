// Package cmd implements the command-line interface for huekit.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/huekit-cli/huekit/history"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("convert", "c", false, "Generate the JSON Schema for convert output objects")
	schemaCmd.Flags().BoolP("recent", "r", false, "Generate the JSON Schema for recent color records")
	schemaCmd.MarkFlagsMutuallyExclusive("convert", "recent")

	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates JSON schemas for structured command outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured command outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("convert")):
			schema = reflector.Reflect(&convertOutput{})
		case lo.Must(cmd.Flags().GetBool("recent")):
			schema = reflector.Reflect([]*history.SavedColor{})
		default:
			schema = reflector.Reflect(&paletteOutput{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
