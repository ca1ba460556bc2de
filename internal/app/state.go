// Package app drives the interactive viewer: window, main loop, orbit
// camera, input bindings, live reload and the wiring between the scene,
// the clipping controller and the render backend.
package app

import (
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gosect/gosect/internal/clipping"
	"github.com/gosect/gosect/internal/render"
	"github.com/gosect/gosect/internal/scene"
	"github.com/gosect/gosect/pkg/stl"
	"github.com/gosect/gosect/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	distance      float32
	angleX        float32
	angleY        float32
	target        mgl32.Vec3
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
	defaultTarget mgl32.Vec3
}

// ClipState holds the clipping controller and its UI-side state
type ClipState struct {
	controller  *clipping.Controller
	activePlane int // 0..2, selected with X/Y/Z
	enabled     bool
	theme       clipping.Theme
}

// ViewSettings holds display toggles
type ViewSettings struct {
	wireframe bool
	edges     bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile  string
	isOpenSCAD  bool
	tempSTLFile string
	fileWatcher *watcher.Watcher
	needsReload atomic.Bool      // set from the watcher goroutine
	isLoading   bool
	loaded      chan *loadResult // background parse hands off here
}

// loadResult is a background-parsed model awaiting main-thread upload
type loadResult struct {
	model      *stl.Model
	stlFile    string
	isOpenSCAD bool
}

// InteractionState holds mouse state
type InteractionState struct {
	lastX, lastY float64
	leftDown     bool
	rightDown    bool
	shiftDown    bool
}

type App struct {
	window      *glfw.Window
	renderer    *render.Renderer
	scene       *scene.Scene
	Camera      CameraState
	Clip        ClipState
	View        ViewSettings
	FileWatch   FileWatchState
	Interaction InteractionState
}
