package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gosect/gosect/internal/clipping"
	"github.com/gosect/gosect/internal/render"
	"github.com/gosect/gosect/internal/scene"
	"github.com/gosect/gosect/pkg/geometry"
)

func init() {
	// GLFW event handling and GL calls must stay on one thread
	runtime.LockOSThread()
}

var themeBackgrounds = map[clipping.Theme][3]float32{
	clipping.ThemeLight: {0.92, 0.92, 0.94},
	clipping.ThemeDark:  {0.10, 0.10, 0.12},
}

// Run opens the viewer on a model file and blocks until the window
// closes.
func Run(sourceFile string) error {
	model, stlFile, isOpenSCAD, err := loadModel(sourceFile)
	if err != nil {
		return err
	}
	if isOpenSCAD {
		defer os.Remove(stlFile)
	}

	window, err := render.NewWindow("gosect", 1400, 900)
	if err != nil {
		return err
	}
	defer render.Terminate()

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	sc := scene.New()
	sc.AddSolid(model)
	for _, solid := range sc.Solids() {
		renderer.UploadSolid(solid)
	}
	fmt.Printf("Loaded %d triangles, size %.3f\n", model.TriangleCount(), sc.Size())

	app := &App{
		window:   window,
		renderer: renderer,
		scene:    sc,
		Clip: ClipState{
			enabled: true,
			theme:   clipping.ThemeDark,
		},
		FileWatch: FileWatchState{
			sourceFile:  sourceFile,
			isOpenSCAD:  isOpenSCAD,
			tempSTLFile: stlFile,
			loaded:      make(chan *loadResult, 1),
		},
	}
	app.setupCameraDefaults()
	app.rebuildController(false)
	defer app.disposeController()

	if err := app.setupFileWatcher(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watching unavailable: %v\n", err)
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	app.installCallbacks()
	app.mainLoop()
	return nil
}

func (app *App) setupCameraDefaults() {
	center := toVec3(app.scene.Center())
	dist := defaultDistance(app.scene)

	app.Camera = CameraState{
		distance:      dist,
		angleX:        0.3,
		angleY:        0.3,
		target:        center,
		defaultDist:   dist,
		defaultAngleX: 0.3,
		defaultAngleY: 0.3,
		defaultTarget: center,
	}
}

func (app *App) mainLoop() {
	for !app.window.ShouldClose() {
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadModel()
		}
		select {
		case result := <-app.FileWatch.loaded:
			app.applyLoadedModel(result)
		default:
		}

		width, height := app.window.GetFramebufferSize()
		view, proj, eye := app.cameraMatrices(width, height)

		app.renderer.DrawFrame(width, height, view, proj, eye,
			app.scene, app.Clip.controller, render.FrameOptions{
				ClippingEnabled: app.Clip.enabled,
				Wireframe:       app.View.wireframe,
				Edges:           app.View.edges,
				Background:      themeBackgrounds[app.Clip.theme],
			})

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// rebuildController disposes the current controller and builds a new
// one for the current scene. With preserve set, plane orientations,
// offsets and the visibility/color flags carry over.
func (app *App) rebuildController(preserve bool) {
	var saved [3]clipping.Plane
	visible := true
	colorMode := false

	old := app.Clip.controller
	if old != nil {
		if preserve {
			for i := 0; i < 3; i++ {
				saved[i] = old.Plane(i)
			}
			visible = old.Visible()
			colorMode = old.ColorMode()
		}
		old.Dispose()
	}

	ctrl := clipping.NewController(app.scene.Root, app.scene.Solids(),
		app.scene.Size(), app.scene.Center(), app.Clip.theme, app.renderer)

	if old != nil && preserve {
		for i := 0; i < 3; i++ {
			ctrl.SetNormal(i, saved[i].Normal)
			ctrl.SetOffset(i, saved[i].Offset)
		}
		ctrl.SetVisible(visible)
		ctrl.SetColorMode(colorMode)
	}

	ctrl.OnNormalChange(func(index int, normal geometry.Vector3) {
		fmt.Printf("Plane %d normal: (%.2f, %.2f, %.2f)\n",
			index, normal.X, normal.Y, normal.Z)
	})

	app.Clip.controller = ctrl
}

func (app *App) disposeController() {
	if app.Clip.controller != nil {
		app.Clip.controller.Dispose()
		app.Clip.controller = nil
	}
}

func toVec3(v geometry.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// defaultDistance is twice the largest bound dimension
func defaultDistance(sc *scene.Scene) float32 {
	size := sc.Bounds().Size()
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}
	if maxDim == 0 {
		maxDim = 1
	}
	return float32(maxDim * 2)
}
