package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/wkalt/easytau/etc"
	"github.com/wkalt/easytau/util/decode"
	"github.com/wkalt/easytau/util/schemadef"
)

var dumpSchema string

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the raw decoded record as JSON",
	Long: `Dump decodes the file against the builtin container schema, or against a
schema definition supplied with --schema, and prints the decoded record as
JSON without any domain-level interpretation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := etc.ContainerSchema
		if dumpSchema != "" {
			def, err := os.ReadFile(dumpSchema)
			if err != nil {
				bailf("failed to read schema definition: %v", err)
			}
			if s, err = schemadef.Parse(dumpSchema, def); err != nil {
				bailf("failed to parse schema definition: %v", err)
			}
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			bailf("failed to read file: %v", err)
		}
		record, err := decode.Decode(s, data)
		if err != nil {
			bailf("failed to decode: %v", err)
		}
		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			bailf("failed to marshal record: %v", err)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpSchema, "schema", "s", "", "schema definition file")
}
