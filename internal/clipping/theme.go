package clipping

import "github.com/gosect/gosect/internal/scene"

// Theme selects the plane helper palette
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// PlaneColors returns the helper color per plane index
func (t Theme) PlaneColors() [3]scene.Color {
	if t == ThemeDark {
		return [3]scene.Color{
			{R: 1, G: 0.271, B: 0},         // orange-red
			{R: 0.196, G: 0.804, B: 0.196}, // lime-green
			{R: 0.678, G: 0.847, B: 0.902}, // light-blue
		}
	}
	return [3]scene.Color{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
	}
}

// HelperOpacity returns the translucency of the plane helper quads
func (t Theme) HelperOpacity() float32 {
	if t == ThemeDark {
		return 0.20
	}
	return 0.10
}
