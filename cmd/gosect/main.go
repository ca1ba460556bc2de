package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gosect/gosect/internal/app"
	"github.com/gosect/gosect/version"
)

var rootCmd = &cobra.Command{
	Use:   "gosect [file]",
	Short: "Interactive cross-section viewer for STL and OpenSCAD models",
	Long: `gosect opens tessellated solid models (.stl, .scad) in an interactive
3D viewer built around three adjustable clip planes. Cuts through closed
solids are closed with flat stencil caps, and source files are watched
for changes and reloaded live.

Keys: X/Y/Z select a plane, arrows or [ ] move it, N flips it,
C toggles clipping, V caps/helpers, O object-color caps, T theme,
W wireframe, E edges, 1-6 view presets, R reset.`,
	Version: version.GetVersion(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(args[0])
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
