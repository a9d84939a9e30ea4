package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/easytau/etc"
)

var (
	curvesIndex  int
	curvesPoints bool
)

// curvesCmd represents the curves command
var curvesCmd = &cobra.Command{
	Use:   "curves [file]",
	Short: "Print per-curve summaries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		file, err := etc.Read(ctx, args[0])
		if err != nil {
			bailf("failed to read container: %v", err)
		}
		if curvesIndex >= 0 {
			if curvesIndex >= len(file.Curves) {
				bailf("curve %d does not exist; container has %d curves",
					curvesIndex, len(file.Curves))
			}
			printCurve(curvesIndex, file.Curves[curvesIndex], curvesPoints)
			return
		}
		for i, curve := range file.Curves {
			printCurve(i, curve, curvesPoints)
		}
	},
}

func printCurve(index int, curve etc.Curve, points bool) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("curve %d\n", index)
	fmt.Printf("  type:       %s\n", curve.Type)
	fmt.Printf("  anisotropy: %s\n", curve.Anisotropy)
	fmt.Printf("  resolution: %g\n", curve.Resolution)
	fmt.Printf("  first x:    %g\n", curve.FirstX)
	fmt.Printf("  points:     %d\n", len(curve.X))
	for _, p := range curve.Parameters {
		fmt.Printf("  %-24s %s %s%s\n", p.Identity, p.Data.Display(), p.Prefix, p.Unit)
	}
	if points {
		for i := range curve.X {
			fmt.Printf("  %g\t%d\n", curve.X[i], curve.Y[i])
		}
	}
}

func init() {
	rootCmd.AddCommand(curvesCmd)

	curvesCmd.Flags().IntVarP(&curvesIndex, "index", "i", -1, "print a single curve")
	curvesCmd.Flags().BoolVarP(&curvesPoints, "points", "p", false, "print XY data")
}
