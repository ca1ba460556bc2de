package scene

// Color is a normalized RGB triple
type Color struct {
	R, G, B float32
}

// Material is the shaded appearance of a solid or helper surface
type Material struct {
	Color   Color
	Opacity float32
}

// Solid is a loaded body: a scene node with mesh data, a material and
// a closed-manifold flag deciding whether section caps apply to it.
type Solid struct {
	Node     *Node
	Mesh     *TriMesh
	Material Material
	Closed   bool
}

// basePalette provides base colors for loaded solids, cycled in order
var basePalette = []Color{
	{0.64, 0.68, 0.76},
	{0.78, 0.58, 0.42},
	{0.48, 0.66, 0.54},
	{0.62, 0.54, 0.72},
	{0.72, 0.68, 0.46},
	{0.50, 0.62, 0.72},
}

// PaletteColor returns the base color for the i-th loaded solid
func PaletteColor(i int) Color {
	return basePalette[i%len(basePalette)]
}
