// Command linedemo renders sample thickline scenes to PNG and picks lines
// under a pixel.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/thickline"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "linedemo",
	Short: "Render and pick variable-width polylines",
	Long: `linedemo draws a sample scene of open, closed, dashed and arrowed
polylines with the thickline software renderer and writes it as PNG.
The same scene can be queried with ray picking.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			thickline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
