package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/easytau/etc"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print container header and content counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		file, err := etc.Read(ctx, args[0])
		if err != nil {
			bailf("failed to read container: %v", err)
		}
		header := color.New(color.FgCyan, color.Bold)
		header.Println(file.Identity)
		fmt.Printf("version:           %d\n", file.Version)
		fmt.Printf("guid:              %s\n", file.GUID)
		fmt.Printf("created:           %s\n", file.CreationDate.Format(time.RFC3339))
		fmt.Printf("context:           %s\n", file.Context)
		fmt.Printf("system parameters: %d\n", len(file.SystemParameters))
		fmt.Printf("series parameters: %d\n", len(file.SeriesParameters))
		fmt.Printf("curves:            %d\n", len(file.Curves))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
