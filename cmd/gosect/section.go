package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/section"
	"github.com/gosect/gosect/pkg/stl"
	"github.com/gosect/gosect/pkg/viewer"
)

var (
	sectionPlanes   []string
	sectionOutput   string
	sectionSnapshot string
)

var sectionCmd = &cobra.Command{
	Use:   "section [file]",
	Short: "Compute cross-section contours of an STL file",
	Long: `Clip a model by one or more planes and export the cut contours as
JSON polylines. Planes are given as axis=offset (e.g. x=1.5); the
half-space below the offset along that axis is kept, matching the
viewer's default plane orientation.`,
	Args: cobra.ExactArgs(1),
	RunE: runSection,
}

func init() {
	sectionCmd.Flags().StringArrayVarP(&sectionPlanes, "plane", "p", nil,
		"clip plane as axis=offset (repeatable, e.g. -p x=1.5 -p z=0)")
	sectionCmd.Flags().StringVarP(&sectionOutput, "output", "o", "",
		"write JSON to file instead of stdout")
	sectionCmd.Flags().StringVar(&sectionSnapshot, "snapshot", "",
		"also render a PNG snapshot of the sectioned model")
	rootCmd.AddCommand(sectionCmd)
}

// sectionResult is the JSON export shape
type sectionResult struct {
	File     string        `json:"file"`
	Planes   []planeJSON   `json:"planes"`
	Contours []contourJSON `json:"contours"`
	Kept     int           `json:"keptTriangles"`
}

type planeJSON struct {
	Axis   string  `json:"axis"`
	Offset float64 `json:"offset"`
}

type contourJSON struct {
	Plane  int          `json:"plane"`
	Points [][3]float64 `json:"points"`
}

func runSection(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if len(sectionPlanes) == 0 {
		return fmt.Errorf("at least one --plane is required")
	}

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("failed to parse STL file: %w", err)
	}

	var planes []section.Plane
	var planesOut []planeJSON
	for _, spec := range sectionPlanes {
		plane, axis, offset, err := parsePlaneFlag(spec)
		if err != nil {
			return err
		}
		planes = append(planes, plane)
		planesOut = append(planesOut, planeJSON{Axis: axis, Offset: offset})
	}

	kept, cuts := section.ClipModel(model, planes)

	tolerance := model.BoundingBox().Diagonal() * 1e-6
	if tolerance == 0 {
		tolerance = 1e-9
	}

	result := sectionResult{
		File:   filename,
		Planes: planesOut,
		Kept:   len(kept),
	}
	for planeIdx, edges := range section.GroupByPlane(cuts) {
		for _, contour := range section.Contours(edges, tolerance) {
			out := contourJSON{Plane: planeIdx}
			for _, p := range contour {
				out.Points = append(out.Points, [3]float64{p.X, p.Y, p.Z})
			}
			result.Contours = append(result.Contours, out)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if sectionOutput != "" {
		if err := os.WriteFile(sectionOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Wrote %d contour(s) to %s\n", len(result.Contours), sectionOutput)
	} else {
		os.Stdout.Write(data)
	}

	if sectionSnapshot != "" {
		if err := writeSnapshot(model, planes, sectionSnapshot); err != nil {
			return err
		}
		fmt.Printf("Wrote snapshot to %s\n", sectionSnapshot)
	}
	return nil
}

// parsePlaneFlag parses "axis=offset". The plane normal points along
// the negative axis, so geometry above the offset is cut away.
func parsePlaneFlag(spec string) (section.Plane, string, float64, error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 {
		return section.Plane{}, "", 0, fmt.Errorf("invalid plane %q (expected axis=offset)", spec)
	}

	axis := strings.ToLower(strings.TrimSpace(parts[0]))
	offset, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return section.Plane{}, "", 0, fmt.Errorf("invalid plane offset %q: %w", parts[1], err)
	}

	var normal geometry.Vector3
	switch axis {
	case "x":
		normal = geometry.NewVector3(-1, 0, 0)
	case "y":
		normal = geometry.NewVector3(0, -1, 0)
	case "z":
		normal = geometry.NewVector3(0, 0, -1)
	default:
		return section.Plane{}, "", 0, fmt.Errorf("invalid plane axis %q (expected x, y or z)", axis)
	}

	return section.Plane{Normal: normal, Offset: offset}, axis, offset, nil
}

func writeSnapshot(model *stl.Model, planes []section.Plane, path string) error {
	img := viewer.Snapshot(model, planes, nil, viewer.DefaultOptions())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
