package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

var flagRotations bool

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print every piece with its color",
	Long: `Print the shape catalog: each kind's spawn matrix and the color
assigned to it by the effective configuration.

Examples:
  blockfall shapes
  blockfall shapes --rotations
  blockfall shapes --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&flagRotations, "rotations", false, "Also print the three clockwise rotations")
}

func runShapes(cmd *cobra.Command, _ []string) error {
	props, err := loadProperties()
	if err != nil {
		return err
	}
	catalog, err := props.Catalog()
	if err != nil {
		return err
	}
	return printCatalog(cmd.OutOrStdout(), catalog, flagRotations)
}

// printCatalog writes each kind's matrices side by side under a header line.
func printCatalog(w io.Writer, catalog *shapes.Catalog, rotations bool) error {
	for _, k := range shapes.Kinds() {
		m, err := catalog.Shape(k)
		if err != nil {
			return err
		}
		color, err := catalog.Color(k)
		if err != nil {
			return err
		}

		views := []shapes.Matrix{m}
		if rotations {
			for range 3 {
				views = append(views, views[len(views)-1].RotateCW())
			}
		}

		fmt.Fprintf(w, "%s  %s\n", k, color)
		fmt.Fprintln(w, sideBySide(views))
	}
	return nil
}

// sideBySide lays out matrices left to right, top-aligned.
func sideBySide(views []shapes.Matrix) string {
	height := 0
	for _, v := range views {
		height = max(height, v.Rows())
	}

	grids := make([][]string, len(views))
	for i, v := range views {
		grids[i] = strings.Split(v.String(), "\n")
	}

	var b strings.Builder
	for row := range height {
		b.WriteString("  ")
		for i, v := range views {
			line := strings.Repeat(" ", v.Cols())
			if row < len(grids[i]) {
				line = grids[i][row]
			}
			b.WriteString(line)
			if i < len(views)-1 {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
