package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene to render (see -help for the list)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of render workers")
	bounces := flag.Int("bounces", core.DefaultMaxBounces, "Maximum reflection/refraction depth")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default         - Three spheres on a checkered plane")
		fmt.Println("  reflect-refract - Mirror and glass spheres over a checkered floor")
		fmt.Println("  showcase        - One of every shape, with patterns and groups")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	if *format != "png" && *format != "ppm" {
		fmt.Printf("Unknown format %q, expected 'png' or 'ppm'\n", *format)
		os.Exit(1)
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := scene.NewSceneByName(*sceneName, *width, *height)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using %s scene at %dx%d...\n", selectedScene.Name, *width, *height)

	// Create output directory for this scene
	outputDir := filepath.Join("output", selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	config := renderer.RenderConfig{
		MaxBounces: *bounces,
		NumWorkers: *workers,
		Progress: func(completed, total int) {
			// Overwrite the same line as rows finish
			fmt.Printf("\rRendering... %d/%d rows", completed, total)
			if completed == total {
				fmt.Println()
			}
		},
	}

	startTime := time.Now()
	canvas := renderer.RenderWithConfig(selectedScene.Camera, selectedScene.World, config)
	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v with %d workers\n", renderTime, *workers)

	filename := outputPath(outputDir, *format)
	if err := save(canvas, filename, *format); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// outputPath builds a timestamped filename inside the output directory.
func outputPath(outputDir, format string) string {
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// save writes the canvas to disk in the requested format.
func save(canvas *renderer.Canvas, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if format == "ppm" {
		_, err = file.Write(canvas.ToBinaryPPM())
		return err
	}
	return png.Encode(file, canvas.ToImage())
}
