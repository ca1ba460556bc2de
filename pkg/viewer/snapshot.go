// Package viewer renders offline snapshots of sectioned models into an
// image. It is a pure software rasterizer with no GPU or window system
// dependency, used by the GUI frontend and batch tooling.
package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/section"
	"github.com/gosect/gosect/pkg/stl"
)

// Options controls a snapshot rendering
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	BaseColor  color.RGBA
	CapColors  []color.RGBA // indexed by plane, missing entries fall back to BaseColor
	ShowCaps   bool
	Wireframe  bool
}

// DefaultOptions returns snapshot options matching the interactive viewer
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Background: color.RGBA{30, 30, 34, 255},
		BaseColor:  color.RGBA{170, 180, 200, 255},
		CapColors: []color.RGBA{
			{255, 0, 0, 255},
			{0, 128, 0, 255},
			{0, 0, 255, 255},
		},
		ShowCaps: true,
	}
}

// Snapshot renders the model clipped by the given planes. Cut openings
// are closed with filled cap polygons when ShowCaps is set.
func Snapshot(model *stl.Model, planes []section.Plane, camera *Camera, opts Options) *image.RGBA {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if camera == nil {
		camera = NewCamera(model.BoundingBox())
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.SetRGBA(x, y, opts.Background)
		}
	}

	zbuffer := make([]float64, opts.Width*opts.Height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	kept, cuts := section.ClipModel(model, planes)
	w := float64(opts.Width)
	h := float64(opts.Height)

	for _, tri := range kept {
		x1, y1, z1 := camera.Project(tri.Vertices[0], w, h)
		x2, y2, z2 := camera.Project(tri.Vertices[1], w, h)
		x3, y3, z3 := camera.Project(tri.Vertices[2], w, h)

		col := shade(opts.BaseColor, tri.Normal)
		fillTriangleWithDepth(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}

	if opts.ShowCaps {
		renderCaps(img, zbuffer, camera, cuts, planes, model, opts)
	}

	if opts.Wireframe {
		edgeCol := color.RGBA{0, 0, 0, 255}
		for _, tri := range kept {
			for i := 0; i < 3; i++ {
				a := tri.Vertices[i]
				b := tri.Vertices[(i+1)%3]
				ax, ay, _ := camera.Project(a, w, h)
				bx, by, _ := camera.Project(b, w, h)
				drawLine(img, int(ax), int(ay), int(bx), int(by), edgeCol)
			}
		}
	}

	return img
}

// renderCaps chains the cut edges into contours per plane, triangulates
// them and rasterizes the fills with a small depth bias so the caps win
// the depth test against the coplanar cut surface.
func renderCaps(img *image.RGBA, zbuffer []float64, camera *Camera, cuts []section.CutEdge, planes []section.Plane, model *stl.Model, opts Options) {
	tolerance := model.BoundingBox().Diagonal() * 1e-6
	if tolerance == 0 {
		tolerance = 1e-9
	}
	bias := camera.Distance * 1e-4
	w := float64(opts.Width)
	h := float64(opts.Height)

	for planeIdx, edges := range section.GroupByPlane(cuts) {
		capCol := opts.BaseColor
		if planeIdx < len(opts.CapColors) {
			capCol = opts.CapColors[planeIdx]
		}
		col := shade(capCol, planes[planeIdx].Normal)

		for _, contour := range section.Contours(edges, tolerance) {
			for _, tri := range section.Triangulate(contour) {
				x1, y1, z1 := camera.Project(tri[0], w, h)
				x2, y2, z2 := camera.Project(tri[1], w, h)
				x3, y3, z3 := camera.Project(tri[2], w, h)
				fillTriangleWithDepth(img, zbuffer,
					x1, y1, z1-bias, x2, y2, z2-bias, x3, y3, z3-bias, col)
			}
		}
	}
}

// shade applies a three-light model (key, fill, rim) to a base color.
// Lighting is double-sided so clipped interiors stay readable.
func shade(base color.RGBA, normal geometry.Vector3) color.RGBA {
	n := normal
	if n.Length() > 0 {
		n = n.Normalize()
	}

	key := geometry.NewVector3(0.5, 0.8, 1).Normalize()
	fill := geometry.NewVector3(-0.6, 0.2, 0.4).Normalize()
	rim := geometry.NewVector3(0, -0.3, -1).Normalize()

	intensity := 0.25 +
		0.55*math.Abs(n.Dot(key)) +
		0.15*math.Abs(n.Dot(fill)) +
		0.10*math.Abs(n.Dot(rim))
	if intensity > 1 {
		intensity = 1
	}

	return color.RGBA{
		R: uint8(float64(base.R) * intensity),
		G: uint8(float64(base.G) * intensity),
		B: uint8(float64(base.B) * intensity),
		A: base.A,
	}
}
