package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, channel depth, format, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Filters
		{
			Name:        "image_grayscale",
			Description: "Convert an image to grayscale and return it as base64-encoded PNG. Supports luma (ITU-R BT.601), average, and single-channel passthrough formulas.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"luma", "average", "simple"},
						"description": "Luminance formula. Default luma",
						"default":     "luma",
					},
					"monochrome": map[string]interface{}{
						"type":        "boolean",
						"description": "Emit one gray sample per pixel instead of an RGBA image. Default false",
						"default":     false,
					},
					"channel": map[string]interface{}{
						"type":        "integer",
						"description": "Source channel for simple mode: 0=R, 1=G, 2=B, 3=A. Default 1",
						"default":     1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_edge_detect",
			Description: "Run a named edge-detection kernel (Laplacian by default) over an image and return the result as base64-encoded PNG. Color input is reduced to grayscale first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"type": map[string]interface{}{
						"type":        "string",
						"description": "Registered kernel name. Default laplacian",
						"default":     "laplacian",
					},
					"level": map[string]interface{}{
						"type":        "number",
						"description": "Edge strength; higher values amplify the response. Default 1",
						"default":     1,
					},
					"monochrome": map[string]interface{}{
						"type":        "boolean",
						"description": "Emit one gray sample per pixel instead of an RGBA image. Default false",
						"default":     false,
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian denoise radius applied before edge detection. Default 0 (off)",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_convolve",
			Description: "Apply a custom square convolution kernel to an image and return the result as base64-encoded PNG. The alpha channel and border pixels pass through unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"kernel": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Flat row-major kernel of length (2*radius+1)^2",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Kernel half-width (radius 1 = 3x3 kernel)",
					},
					"divisor": map[string]interface{}{
						"type":        "number",
						"description": "Normalization divisor for each weighted sum. Default 1",
						"default":     1,
					},
					"monochrome": map[string]interface{}{
						"type":        "boolean",
						"description": "Collapse RGBA input to one sample per pixel. Default false",
						"default":     false,
					},
					"symmetric_border": map[string]interface{}{
						"type":        "boolean",
						"description": "Use a trailing border band of exactly radius pixels instead of the compatible wider band. Default false",
						"default":     false,
					},
				},
				"required": []string{"path", "kernel", "radius"},
			},
		},
		{
			Name:        "image_denoise",
			Description: "Apply a Gaussian blur to an image and return it as base64-encoded PNG. Useful as a standalone noise-reduction step.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Blur radius in pixels. Default 3",
						"default":     3,
					},
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG, optionally rescaled.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based, inclusive)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based, inclusive)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the color at a specific pixel coordinate in hex, RGBA, and HSL formats.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most frequently occurring colors from an image, sorted by frequency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
