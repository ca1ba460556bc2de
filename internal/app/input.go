package app

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gosect/gosect/internal/clipping"
)

func (app *App) installCallbacks() {
	app.window.SetKeyCallback(app.onKey)
	app.window.SetMouseButtonCallback(app.onMouseButton)
	app.window.SetCursorPosCallback(app.onCursorPos)
	app.window.SetScrollCallback(app.onScroll)
}

func (app *App) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	ctrl := app.Clip.controller

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyC:
		if action == glfw.Press {
			app.Clip.enabled = !app.Clip.enabled
		}

	case glfw.KeyX:
		app.Clip.activePlane = 0
	case glfw.KeyY:
		app.Clip.activePlane = 1
	case glfw.KeyZ:
		app.Clip.activePlane = 2

	case glfw.KeyLeft, glfw.KeyDown, glfw.KeyLeftBracket:
		app.nudgeOffset(-1)
	case glfw.KeyRight, glfw.KeyUp, glfw.KeyRightBracket:
		app.nudgeOffset(1)

	case glfw.KeyN:
		if action == glfw.Press && ctrl != nil {
			i := app.Clip.activePlane
			ctrl.SetNormal(i, ctrl.Plane(i).Normal.Neg())
		}
	case glfw.KeyV:
		if action == glfw.Press && ctrl != nil {
			ctrl.SetVisible(!ctrl.Visible())
		}
	case glfw.KeyO:
		if action == glfw.Press && ctrl != nil {
			ctrl.SetColorMode(!ctrl.ColorMode())
		}
	case glfw.KeyT:
		if action == glfw.Press {
			app.toggleTheme()
		}

	case glfw.KeyW:
		if action == glfw.Press {
			app.View.wireframe = !app.View.wireframe
		}
	case glfw.KeyE:
		if action == glfw.Press {
			app.View.edges = !app.View.edges
		}

	case glfw.Key1:
		app.setCameraFrontView()
	case glfw.Key2:
		app.setCameraBackView()
	case glfw.Key3:
		app.setCameraLeftView()
	case glfw.Key4:
		app.setCameraRightView()
	case glfw.Key5:
		app.setCameraTopView()
	case glfw.Key6:
		app.setCameraBottomView()
	case glfw.KeyR:
		app.resetCameraView()

	case glfw.KeyI:
		if action == glfw.Press {
			app.printModelInfo()
		}
	}
}

// nudgeOffset moves the active plane by a hundredth of the model size
func (app *App) nudgeOffset(direction float64) {
	ctrl := app.Clip.controller
	if ctrl == nil {
		return
	}
	i := app.Clip.activePlane
	step := ctrl.Size() / 100
	ctrl.SetOffset(i, ctrl.Plane(i).Offset+direction*step)
}

func (app *App) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action == glfw.Press
	app.Interaction.shiftDown = mods&glfw.ModShift != 0

	switch button {
	case glfw.MouseButtonLeft:
		app.Interaction.leftDown = pressed
	case glfw.MouseButtonRight:
		app.Interaction.rightDown = pressed
	}

	if pressed {
		app.Interaction.lastX, app.Interaction.lastY = w.GetCursorPos()
	}
}

func (app *App) onCursorPos(w *glfw.Window, x, y float64) {
	dx := x - app.Interaction.lastX
	dy := y - app.Interaction.lastY
	app.Interaction.lastX = x
	app.Interaction.lastY = y

	switch {
	case app.Interaction.rightDown,
		app.Interaction.leftDown && app.Interaction.shiftDown:
		app.pan(dx, dy)
	case app.Interaction.leftDown:
		app.orbit(dx, dy)
	}
}

func (app *App) onScroll(w *glfw.Window, xoff, yoff float64) {
	app.zoom(yoff)
}

// toggleTheme rebuilds the controller with the other theme, keeping
// the current planes and flags. Helper materials are fixed at build
// time, so a rebuild is the simplest correct path.
func (app *App) toggleTheme() {
	if app.Clip.theme == clipping.ThemeLight {
		app.Clip.theme = clipping.ThemeDark
	} else {
		app.Clip.theme = clipping.ThemeLight
	}
	app.rebuildController(true)
}

func (app *App) printModelInfo() {
	for _, solid := range app.scene.Solids() {
		fmt.Printf("%s: %d vertices, closed=%v\n",
			solid.Node.Name, solid.Mesh.VertexCount(), solid.Closed)
	}
	fmt.Printf("size: %.3f, center: %v\n", app.scene.Size(), app.scene.Center())
	if app.FileWatch.sourceFile != "" {
		fmt.Printf("source: %s\n", app.FileWatch.sourceFile)
	}
}
