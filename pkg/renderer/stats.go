package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Total number of pixels rendered
	NumWorkers  int           // Number of parallel row workers used
	Elapsed     time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput
func (rs RenderStats) PixelsPerSecond() float64 {
	seconds := rs.Elapsed.Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(rs.TotalPixels) / seconds
}
