package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/integrator"
	"github.com/mattrusch/softrt/pkg/renderer"
	"github.com/mattrusch/softrt/pkg/scene"
)

// buildScene validates the scene parameters and constructs the sphere scene
func buildScene(sphereCount int, seed int64) (*scene.Scene, error) {
	if sphereCount < 0 {
		return nil, fmt.Errorf("sphere count must be non-negative, got %d", sphereCount)
	}
	return scene.NewRandomScene(sphereCount, seed), nil
}

func main() {
	// Parse command line flags
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 1024, "Image height in pixels")
	sphereCount := flag.Int("spheres", 40, "Number of random spheres in the scene")
	seed := flag.Int64("seed", 43, "Scene generation seed")
	workers := flag.Int("workers", 0, "Number of parallel row workers (0 = CPU count)")
	output := flag.String("output", "", "Output PNG path (default output/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("SoftRT Raytracer")
		fmt.Println("Usage: softrt [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Renders a procedurally generated sphere scene to a PNG file.")
		return
	}

	fmt.Println("Starting SoftRT...")

	sceneObj, err := buildScene(*sphereCount, *seed)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	camera := renderer.NewCamera(core.NewVec3(0, 0, -2))
	rt := renderer.NewRenderer(sceneObj, camera, integrator.DefaultConfig(), *width, *height)
	rt.SetNumWorkers(*workers)

	startTime := time.Now()
	img, stats := rt.Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%.0f pixels/sec)\n", renderTime, stats.PixelsPerSecond())

	// Create timestamped filename unless one was given
	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
