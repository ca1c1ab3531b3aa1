package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nfnt/resize"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/integrator"
	"github.com/mattrusch/softrt/pkg/renderer"
	"github.com/mattrusch/softrt/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width       int   `json:"width"`       // Image width
	Height      int   `json:"height"`      // Image height
	SphereCount int   `json:"sphereCount"` // Number of random spheres
	Seed        int64 `json:"seed"`        // Scene generation seed
	MaxDepth    int   `json:"maxDepth"`    // Maximum bounce depth
	Preview     int   `json:"preview"`     // Downscale the result to this width (0 = full size)
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a scene from query parameters and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj := scene.NewRandomScene(req.SphereCount, req.Seed)

	config := integrator.DefaultConfig()
	config.MaxDepth = req.MaxDepth

	camera := renderer.NewCamera(core.NewVec3(0, 0, -2))
	rt := renderer.NewRenderer(sceneObj, camera, config, req.Width, req.Height)
	rt.SetLogger(newRenderLogger())

	img, stats := rt.Render()
	log.Printf("Rendered %dx%d (%d spheres, seed %d) in %v",
		stats.Width, stats.Height, req.SphereCount, req.Seed, stats.Elapsed)

	// Downscale large renders for preview clients
	var result image.Image = img
	if req.Preview > 0 && req.Preview < req.Width {
		result = resize.Resize(uint(req.Preview), 0, img, resize.Bilinear)
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, result); err != nil {
		log.Printf("Error encoding PNG response: %v", err)
	}
}

// parseRenderRequest parses and validates render parameters from the URL query
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 512, 1, 2048); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 512, 1, 2048); err != nil {
		return nil, err
	}
	if req.SphereCount, err = parseIntParam(r.URL.Query(), "spheres", 40, 0, 1000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(r.URL.Query(), "maxDepth", 8, 0, 64); err != nil {
		return nil, err
	}
	if req.Preview, err = parseIntParam(r.URL.Query(), "preview", 0, 0, 2048); err != nil {
		return nil, err
	}

	seed, err := parseIntParam(r.URL.Query(), "seed", 43, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// renderLogger implements core.Logger, tagging each render's log lines
// with an id so interleaved requests can be told apart.
type renderLogger struct {
	renderID string
}

func newRenderLogger() core.Logger {
	return &renderLogger{renderID: fmt.Sprintf("render-%d", time.Now().UnixNano())}
}

// Printf implements core.Logger
func (rl *renderLogger) Printf(format string, args ...interface{}) {
	log.Printf("[%s] %s", rl.renderID, fmt.Sprintf(format, args...))
}
