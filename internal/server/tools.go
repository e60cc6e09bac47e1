package server

import "github.com/ironsheep/text-contrast-mcp/internal/calculator"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func viewRectSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x":      map[string]interface{}{"type": "integer", "description": "Left edge in screen coordinates"},
			"y":      map[string]interface{}{"type": "integer", "description": "Top edge in screen coordinates"},
			"width":  map[string]interface{}{"type": "integer", "description": "Laid-out width"},
			"height": map[string]interface{}{"type": "integer", "description": "Laid-out height"},
		},
		"required": []string{"x", "y", "width", "height"},
	}
}

func regionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional pixel region; clamped to the image. Defaults to the whole image",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
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
			Description: "Get the intrinsic width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Luminance Operations
		{
			Name: "image_text_luminance",
			Description: "Compute the WCAG relative luminance of the background pixels under a front view (e.g. a text label) " +
				"drawn over an image view, and whether light or dark text reads better there. Both views are given in screen " +
				"coordinates; the image may be displayed at a different size than its pixel size. Fails when the views do not overlap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"back_view":  viewRectSchema("Where the image is laid out on screen"),
					"front_view": viewRectSchema("Where the foreground element is laid out on screen"),
					"algorithm": map[string]interface{}{
						"type":        "string",
						"enum":        calculator.AlgorithmNames(),
						"description": "How to reduce the covered pixels to one color. Default mean",
						"default":     "mean",
					},
				},
				"required": []string{"path", "back_view", "front_view"},
			},
		},
		{
			Name:        "image_average_color",
			Description: "Get the average color of an image region with its relative luminance and recommended text tone.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionSchema(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of an image region, quantized to steps of 16 per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
						"minimum":     1,
					},
					"region": regionSchema(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_luminance",
			Description: "Get the WCAG relative luminance of a hex color and whether light or dark text reads better on it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, #RRGGBB or #RGB",
					},
				},
				"required": []string{"color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
