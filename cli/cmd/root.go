package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wkalt/easytau/util/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "easytau",
	Short: "Inspect PicoQuant EasyTau container files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(verbose)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
