package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosect/gosect/pkg/openscad"
	"github.com/gosect/gosect/pkg/stl"
	"github.com/gosect/gosect/pkg/watcher"
)

// loadModel loads a model from either an STL or OpenSCAD file. For
// OpenSCAD sources the returned path is a temp STL the caller owns.
func loadModel(filePath string) (*stl.Model, string, bool, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".scad":
		fmt.Printf("Rendering OpenSCAD file: %s\n", filePath)

		workDir := filepath.Dir(filePath)
		renderer := openscad.NewRenderer(workDir)
		tempFile := filepath.Join(os.TempDir(), fmt.Sprintf("gosect_temp_%d.stl", time.Now().UnixNano()))

		if err := renderer.RenderToSTL(filePath, tempFile); err != nil {
			return nil, "", true, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}

		model, err := stl.Parse(tempFile)
		if err != nil {
			os.Remove(tempFile)
			return nil, "", true, fmt.Errorf("failed to parse rendered STL: %w", err)
		}
		return model, tempFile, true, nil

	case ".stl":
		model, err := stl.Parse(filePath)
		if err != nil {
			return nil, "", false, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, filePath, false, nil

	default:
		return nil, "", false, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

// setupFileWatcher watches the source file, and for OpenSCAD sources
// the whole use/include closure.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.New(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	var filesToWatch []string
	if app.FileWatch.isOpenSCAD {
		workDir := filepath.Dir(app.FileWatch.sourceFile)
		renderer := openscad.NewRenderer(workDir)

		deps, err := renderer.ResolveDependencies(app.FileWatch.sourceFile)
		if err != nil {
			fw.Close()
			return fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		filesToWatch = deps
		fmt.Printf("Watching %d file(s) for changes\n", len(filesToWatch))
	} else {
		filesToWatch = []string{app.FileWatch.sourceFile}
		fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)
	}

	callback := func(changedFile string) {
		fmt.Printf("File changed: %s\n", changedFile)
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch(filesToWatch, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadModel parses the source file in the background; the result is
// picked up on the main thread by applyLoadedModel.
func (app *App) reloadModel() {
	if app.FileWatch.isLoading {
		return
	}
	app.FileWatch.isLoading = true
	fmt.Println("Reloading model...")

	go func() {
		start := time.Now()
		model, stlFile, isOpenSCAD, err := loadModel(app.FileWatch.sourceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading model: %v\n", err)
			app.FileWatch.loaded <- nil
			return
		}
		fmt.Printf("Parsed %d triangles in %.2fs\n",
			model.TriangleCount(), time.Since(start).Seconds())
		app.FileWatch.loaded <- &loadResult{
			model:      model,
			stlFile:    stlFile,
			isOpenSCAD: isOpenSCAD,
		}
	}()
}

// applyLoadedModel swaps in a background-parsed model. Runs on the
// main thread: GPU uploads and controller rebuilds happen here only.
func (app *App) applyLoadedModel(result *loadResult) {
	app.FileWatch.isLoading = false
	if result == nil {
		return
	}

	oldTempFile := app.FileWatch.tempSTLFile
	if app.FileWatch.isOpenSCAD && oldTempFile != "" && oldTempFile != result.stlFile {
		os.Remove(oldTempFile)
	}
	app.FileWatch.tempSTLFile = result.stlFile
	app.FileWatch.isOpenSCAD = result.isOpenSCAD

	savedTarget := app.Camera.target
	oldCenter := app.scene.Center()

	app.renderer.ReleaseAll()
	app.scene.Clear()
	app.scene.AddSolid(result.model)
	for _, solid := range app.scene.Solids() {
		app.renderer.UploadSolid(solid)
	}

	// Keep the view where the user left it, shifted with the model
	newCenter := app.scene.Center()
	delta := newCenter.Sub(oldCenter)
	app.Camera.target = savedTarget.Add(toVec3(delta))
	app.Camera.defaultTarget = toVec3(newCenter)
	app.Camera.defaultDist = defaultDistance(app.scene)

	// Controllers are not reusable across loads
	app.rebuildController(true)

	fmt.Println("Model reloaded")
}
