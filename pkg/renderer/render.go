package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RenderConfig contains rendering configuration.
type RenderConfig struct {
	MaxBounces int // Maximum reflection/refraction recursion depth
	NumWorkers int // Worker goroutines; <=0 means one per CPU
	// Progress, when set, is called after each finished row with the
	// number of completed rows and the total.
	Progress func(completed, total int)
}

// DefaultRenderConfig returns sensible default values.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxBounces: core.DefaultMaxBounces,
		NumWorkers: runtime.NumCPU(),
	}
}

// Render traces every pixel of the camera's image through the world with
// the default configuration.
func Render(camera *Camera, w *world.World) *Canvas {
	return RenderWithConfig(camera, w, DefaultRenderConfig())
}

// RenderWithConfig traces every pixel using the given configuration. Rows
// are distributed across a pool of workers; pixels are independent and the
// world is read-only during the render, so workers share it without
// locking and write disjoint canvas rows.
func RenderWithConfig(camera *Camera, w *world.World, config RenderConfig) *Canvas {
	canvas, err := NewCanvas(camera.HSize(), camera.VSize())
	if err != nil {
		// Camera construction enforces positive dimensions.
		panic(err)
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxBounces := config.MaxBounces
	if maxBounces < 0 {
		maxBounces = 0
	}

	rows := make(chan int, camera.VSize())
	for y := 0; y < camera.VSize(); y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	var completed atomic.Int64
	total := camera.VSize()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < camera.HSize(); x++ {
					ray := camera.RayForPixel(x, y)
					canvas.WritePixel(x, y, w.ColorAt(ray, maxBounces))
				}
				if config.Progress != nil {
					config.Progress(int(completed.Add(1)), total)
				}
			}
		}()
	}
	wg.Wait()

	return canvas
}
