package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixel-filter-mcp/internal/imaging"
	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the buffer from cache
//  4. Calls the appropriate pixel/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Filters
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_convolve":
		return s.handleImageConvolve(args)
	case "image_denoise":
		return s.handleImageDenoise(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadBufferInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Filter Handlers ===

type imageGrayscaleArgs struct {
	Path       string `json:"path"`
	Mode       string `json:"mode"`
	Monochrome bool   `json:"monochrome"`
	// Channel is a pointer so that an absent argument can default to 1
	// (green) while an explicit 0 still selects the red channel.
	Channel *int `json:"channel,omitempty"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts := pixel.DefaultGrayscaleOptions()
	if a.Mode != "" {
		opts.Mode = pixel.GrayscaleMode(a.Mode)
	}
	opts.Monochrome = a.Monochrome
	if a.Channel != nil {
		opts.Channel = *a.Channel
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := pixel.Grayscale(buf, opts)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(out)
}

type imageEdgeDetectArgs struct {
	Path       string  `json:"path"`
	Type       string  `json:"type"`
	Level      float64 `json:"level"`
	Monochrome bool    `json:"monochrome"`
	BlurRadius float64 `json:"blur_radius"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.BlurRadius > 0 {
		buf, err = imaging.Denoise(buf, a.BlurRadius)
		if err != nil {
			return nil, err
		}
	}
	out, err := pixel.Edge(buf, pixel.EdgeOptions{
		Type:       a.Type,
		Level:      a.Level,
		Monochrome: a.Monochrome,
	})
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(out)
}

type imageConvolveArgs struct {
	Path   string `json:"path"`
	Kernel []int  `json:"kernel"`
	// Radius is a pointer so that a missing argument is distinguishable
	// from an explicit radius 0 (a 1x1 kernel).
	Radius          *int    `json:"radius,omitempty"`
	Divisor         float64 `json:"divisor"`
	Monochrome      bool    `json:"monochrome"`
	SymmetricBorder bool    `json:"symmetric_border"`
}

func (s *Server) handleImageConvolve(args json.RawMessage) (interface{}, error) {
	var a imageConvolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == nil {
		return nil, fmt.Errorf("%w: radius is required", pixel.ErrOption)
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := pixel.Convolve(buf, pixel.ConvolveOptions{
		Kernel:          pixel.Kernel(a.Kernel),
		Radius:          *a.Radius,
		Divisor:         a.Divisor,
		Monochrome:      a.Monochrome,
		SymmetricBorder: a.SymmetricBorder,
	})
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(out)
}

type imageDenoiseArgs struct {
	Path   string  `json:"path"`
	Radius float64 `json:"radius"`
}

func (s *Server) handleImageDenoise(args json.RawMessage) (interface{}, error) {
	var a imageDenoiseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 3.0
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.Denoise(buf, a.Radius)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(out)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.Crop(buf, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(out)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(buf, a.Count)
}
