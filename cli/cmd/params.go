package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/easytau/etc"
)

// paramsCmd represents the params command
var paramsCmd = &cobra.Command{
	Use:   "params [file]",
	Short: "Print system and series parameters",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		file, err := etc.Read(ctx, args[0])
		if err != nil {
			bailf("failed to read container: %v", err)
		}
		header := color.New(color.FgCyan, color.Bold)

		header.Println("system parameters")
		for _, p := range file.SystemParameters {
			fmt.Printf("  %-24s %s %s%s\n", p.Identity, p.Data.Display(), p.Prefix, p.Unit)
		}

		header.Println("series parameters")
		for _, p := range file.SeriesParameters {
			fmt.Printf("  %-24s start %g step %g end %g %s%s\n",
				p.Identity, p.Start, p.Step, p.End, p.Prefix, p.Unit)
		}
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}
