package app

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraEye returns the camera position from its spherical coordinates
func (app *App) cameraEye() mgl32.Vec3 {
	ax := float64(app.Camera.angleX)
	ay := float64(app.Camera.angleY)
	d := app.Camera.distance

	x := d * float32(math.Cos(ax)) * float32(math.Sin(ay))
	y := d * float32(math.Sin(ax))
	z := d * float32(math.Cos(ax)) * float32(math.Cos(ay))

	return app.Camera.target.Add(mgl32.Vec3{x, y, z})
}

// cameraMatrices returns the view and projection for the current frame
func (app *App) cameraMatrices(width, height int) (view, proj mgl32.Mat4, eye mgl32.Vec3) {
	eye = app.cameraEye()
	view = mgl32.LookAtV(eye, app.Camera.target, mgl32.Vec3{0, 1, 0})

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	size := float32(app.scene.Size())
	if size == 0 {
		size = 1
	}
	proj = mgl32.Perspective(mgl32.DegToRad(45), aspect, size*0.01, size*100)
	return view, proj, eye
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Camera.defaultTarget
}

// setCameraTopView looks straight down
func (app *App) setCameraTopView() {
	app.setCameraAngles(math.Pi/2-0.001, 0)
}

// setCameraBottomView looks straight up
func (app *App) setCameraBottomView() {
	app.setCameraAngles(-math.Pi/2+0.001, 0)
}

func (app *App) setCameraFrontView() { app.setCameraAngles(0, 0) }
func (app *App) setCameraBackView()  { app.setCameraAngles(0, math.Pi) }
func (app *App) setCameraLeftView()  { app.setCameraAngles(0, -math.Pi/2) }
func (app *App) setCameraRightView() { app.setCameraAngles(0, math.Pi/2) }

func (app *App) setCameraAngles(ax, ay float64) {
	app.Camera.angleX = float32(ax)
	app.Camera.angleY = float32(ay)
	app.Camera.target = app.Camera.defaultTarget
}

// orbit rotates the camera by mouse delta
func (app *App) orbit(dx, dy float64) {
	app.Camera.angleY += float32(dx) * 0.01
	app.Camera.angleX += float32(dy) * 0.01

	// Clamp to avoid flipping over the poles
	limit := float32(math.Pi/2 - 0.01)
	if app.Camera.angleX > limit {
		app.Camera.angleX = limit
	}
	if app.Camera.angleX < -limit {
		app.Camera.angleX = -limit
	}
}

// pan moves the camera target in the view plane
func (app *App) pan(dx, dy float64) {
	eye := app.cameraEye()
	forward := app.Camera.target.Sub(eye).Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward).Normalize()

	speed := app.Camera.distance * 0.001
	move := right.Mul(-float32(dx) * speed).Add(up.Mul(float32(dy) * speed))
	app.Camera.target = app.Camera.target.Add(move)
}

// zoom scales the camera distance
func (app *App) zoom(delta float64) {
	app.Camera.distance *= float32(1 - delta*0.1)
	minDist := float32(app.scene.Size()) * 0.05
	if minDist == 0 {
		minDist = 0.05
	}
	if app.Camera.distance < minDist {
		app.Camera.distance = minDist
	}
}
