package renderer

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/integrator"
	"github.com/mattrusch/softrt/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer drives the per-pixel loop: it generates a camera ray for each
// pixel, shades it, and writes the saturated result into an image. The
// shading core is pure, so rows can be rendered on parallel workers with
// results identical to a serial render.
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *integrator.Integrator
	width      int
	height     int
	numWorkers int
	logger     core.Logger
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(sc *scene.Scene, camera *Camera, config integrator.Config, width, height int) *Renderer {
	return &Renderer{
		scene:      sc,
		camera:     camera,
		integrator: integrator.NewIntegrator(config),
		width:      width,
		height:     height,
		numWorkers: 0, // Auto-detect CPU count
		logger:     NewDefaultLogger(),
	}
}

// SetNumWorkers sets the number of parallel row workers (0 = CPU count)
func (r *Renderer) SetNumWorkers(n int) {
	r.numWorkers = n
}

// SetLogger replaces the renderer's logger
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// Render traces one ray per pixel and returns the image with stats
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	numWorkers := r.numWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	startTime := time.Now()

	rows := make(chan int, r.height)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(img, j)
			}
		}()
	}

	for j := 0; j < r.height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		Width:       r.width,
		Height:      r.height,
		TotalPixels: r.width * r.height,
		NumWorkers:  numWorkers,
		Elapsed:     time.Since(startTime),
	}
	r.logger.Printf("Rendered %dx%d pixels on %d workers in %v\n",
		stats.Width, stats.Height, stats.NumWorkers, stats.Elapsed)

	return img, stats
}

// renderRow shades every pixel of row j. Rows never overlap, so workers
// write to the image without locking.
func (r *Renderer) renderRow(img *image.RGBA, j int) {
	cameraPosition := r.camera.Origin()
	for i := 0; i < r.width; i++ {
		s := float64(i) / float64(r.width)
		t := float64(j) / float64(r.height)

		ray := r.camera.GetRay(s, t)
		colorVec := r.integrator.Shade(ray, r.scene.Spheres, cameraPosition, 0)

		img.SetRGBA(i, j, vec3ToColor(colorVec))
	}
}

// vec3ToColor converts a color vector to RGBA. This is the only place
// color values are clamped; the integrator itself works unclamped.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Saturate()
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
