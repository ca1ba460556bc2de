package main

import (
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/gosect/gosect/pkg/analysis"
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/section"
	"github.com/gosect/gosect/pkg/stl"
	"github.com/gosect/gosect/pkg/viewer"
)

// axisNormals matches the interactive viewer's default plane set
var axisNormals = [3]geometry.Vector3{
	geometry.NewVector3(-1, 0, 0),
	geometry.NewVector3(0, -1, 0),
	geometry.NewVector3(0, 0, -1),
}

var axisNames = [3]string{"X", "Y", "Z"}

type App struct {
	window fyne.Window
	model  *stl.Model
	camera *viewer.Camera

	image   *canvas.Image
	sliders [3]*widget.Slider
	enabled [3]bool

	showCaps     bool
	objectColors bool
	wireframe    bool
}

func main() {
	a := app.New()
	w := a.NewWindow("gosect - Cross-Section Preview")

	appInstance := &App{
		window:   w,
		showCaps: true,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("gosect cross-section preview")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open STL File' to load a 3D model")

	openButton := widget.NewButton("Open STL File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), a.window)
		return
	}

	a.model = model
	a.camera = viewer.NewCamera(model.BoundingBox())
	a.setupMainUI()
}

// planes returns the active clip planes from the slider positions
func (a *App) planes() []section.Plane {
	var planes []section.Plane
	for i := 0; i < 3; i++ {
		if !a.enabled[i] {
			continue
		}
		planes = append(planes, section.Plane{
			Normal: axisNormals[i],
			Offset: a.sliders[i].Value,
		})
	}
	return planes
}

func (a *App) render() {
	if a.model == nil {
		return
	}

	opts := viewer.DefaultOptions()
	opts.ShowCaps = a.showCaps
	opts.Wireframe = a.wireframe
	if a.objectColors {
		base := opts.BaseColor
		opts.CapColors = []color.RGBA{base, base, base}
	}

	a.image.Image = viewer.Snapshot(a.model, a.planes(), a.camera, opts)
	a.image.Refresh()
}

func (a *App) setupMainUI() {
	a.image = canvas.NewImageFromImage(nil)
	a.image.FillMode = canvas.ImageFillContain
	a.image.SetMinSize(fyne.NewSize(800, 600))

	// One offset slider per plane, spanning the model along its axis.
	// The plane keeps geometry below the offset, so the slider's max
	// leaves the model uncut.
	bbox := a.model.BoundingBox()
	mins := [3]float64{bbox.Min.X, bbox.Min.Y, bbox.Min.Z}
	maxs := [3]float64{bbox.Max.X, bbox.Max.Y, bbox.Max.Z}

	planeRows := make([]fyne.CanvasObject, 0, 3)
	for i := 0; i < 3; i++ {
		i := i
		slider := widget.NewSlider(mins[i], maxs[i])
		slider.Step = (maxs[i] - mins[i]) / 200
		slider.Value = (mins[i] + maxs[i]) / 2
		slider.OnChanged = func(float64) { a.render() }
		a.sliders[i] = slider

		check := widget.NewCheck(axisNames[i]+" plane", func(checked bool) {
			a.enabled[i] = checked
			a.render()
		})

		planeRows = append(planeRows, check, slider)
	}

	capsCheck := widget.NewCheck("Fill caps", func(checked bool) {
		a.showCaps = checked
		a.render()
	})
	capsCheck.SetChecked(true)

	objectColorCheck := widget.NewCheck("Object-color caps", func(checked bool) {
		a.objectColors = checked
		a.render()
	})

	wireframeCheck := widget.NewCheck("Wireframe", func(checked bool) {
		a.wireframe = checked
		a.render()
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	result := analysis.AnalyzeModel(a.model)
	modelInfo := widget.NewLabel(fmt.Sprintf(
		"Model: %s\nTriangles: %d\nSurface Area: %.2f\nClosed: %v\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.model.Name,
		result.TriangleCount,
		result.SurfaceArea,
		result.Closed,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))

	controls := []fyne.CanvasObject{
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		modelInfo,
		widget.NewSeparator(),
		widget.NewLabel("Section Planes:"),
	}
	controls = append(controls, planeRows...)
	controls = append(controls,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		capsCheck,
		objectColorCheck,
		wireframeCheck,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(container.NewVBox(controls...))
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,
		nil,
		nil,
		infoScroll,
		a.image,
	)

	a.window.SetContent(content)
	a.render()
}
