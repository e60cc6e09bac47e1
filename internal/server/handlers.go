package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/text-contrast-mcp/internal/calculator"
	"github.com/ironsheep/text-contrast-mcp/internal/imaging"
	"github.com/ironsheep/text-contrast-mcp/internal/layout"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_text_luminance").
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
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Luminance Operations
	case "image_text_luminance":
		return s.handleImageTextLuminance(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "color_luminance":
		return s.handleColorLuminance(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ToneReport describes a background luminance and the text tone to use over it.
type ToneReport struct {
	Luminance         float32          `json:"luminance"`
	TextTone          imaging.TextTone `json:"text_tone"`
	ContrastWithWhite float64          `json:"contrast_with_white"`
	ContrastWithBlack float64          `json:"contrast_with_black"`
}

func newToneReport(l float32) ToneReport {
	return ToneReport{
		Luminance:         l,
		TextTone:          imaging.TextToneFor(l),
		ContrastWithWhite: imaging.ContrastRatio(l, 1),
		ContrastWithBlack: imaging.ContrastRatio(l, 0),
	}
}

// viewRect is an element rectangle in screen coordinates.
type viewRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (v viewRect) rect() image.Rectangle {
	return image.Rect(v.X, v.Y, v.X+v.Width, v.Y+v.Height)
}

// pixelRegion is an optional region in image pixel coordinates, x2/y2 exclusive.
type pixelRegion struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// crop clamps region to buf and extracts it. A nil region selects the whole
// buffer.
func crop(buf *image.NRGBA, region *pixelRegion) (*image.NRGBA, error) {
	if region == nil {
		return buf, nil
	}
	b := buf.Bounds()
	target := image.Rectangle{
		Min: image.Point{X: region.X1, Y: region.Y1},
		Max: image.Point{X: region.X2, Y: region.Y2},
	}
	r, ok := imaging.MapToPixelSpace(target, imaging.ScaleRatio{X: 1, Y: 1}, imaging.Size{W: b.Dx(), H: b.Dy()})
	if !ok || r.Empty() {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) does not overlap image bounds %dx%d",
			region.X1, region.Y1, region.X2, region.Y2, b.Dx(), b.Dy())
	}
	return imaging.Extract(buf, r), nil
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Luminance Handlers ===

type imageTextLuminanceArgs struct {
	Path      string   `json:"path"`
	BackView  viewRect `json:"back_view"`
	FrontView viewRect `json:"front_view"`
	Algorithm string   `json:"algorithm"`
}

// TextLuminanceResult is the outcome of image_text_luminance.
type TextLuminanceResult struct {
	ToneReport
	Algorithm string `json:"algorithm"`
}

// handleImageTextLuminance lays out a back view showing the image and a front
// view over it, then runs a Calculator once.
//
// Both rectangles are screen coordinates. The back view's width and height are
// the displayed size of the image, so the image is scaled from its intrinsic
// size to fit them. A front view that misses the image is a tool error.
func (s *Server) handleImageTextLuminance(args json.RawMessage) (interface{}, error) {
	var a imageTextLuminanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Algorithm == "" {
		a.Algorithm = "mean"
	}
	alg, err := calculator.AlgorithmByName(a.Algorithm)
	if err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadPixelBuffer(a.Path)
	if err != nil {
		return nil, err
	}

	tree := layout.NewTree()
	tree.Place("back", a.BackView.rect())
	tree.PlaceMeasured("front", a.FrontView.rect(), imaging.Size{W: a.FrontView.Width, H: a.FrontView.Height})
	view := layout.NewImageView(buf, imaging.Size{W: a.BackView.Width, H: a.BackView.Height})

	calc, err := calculator.New(calculator.Config{
		Geometry: tree,
		Source:   view,
		FrontID:  "front",
		BackID:   "back",
		Logger:   s.logger,
	})
	if err != nil {
		return nil, err
	}

	var result *TextLuminanceResult
	var failure error
	calc.Configure(calculator.ListenerFuncs{
		OnDone: func(l float32) {
			result = &TextLuminanceResult{ToneReport: newToneReport(l), Algorithm: a.Algorithm}
		},
		OnFail: func(err error) { failure = err },
	}, alg)
	calc.Recompute()

	if failure != nil {
		return nil, failure
	}
	return result, nil
}

type imageAverageColorArgs struct {
	Path   string       `json:"path"`
	Region *pixelRegion `json:"region,omitempty"`
}

// AverageColorResult is the outcome of image_average_color.
type AverageColorResult struct {
	ToneReport
	Hex        string        `json:"hex"`
	RGB        imaging.Color `json:"rgb"`
	PixelCount int           `json:"pixel_count"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageAverageColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadPixelBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	sub, err := crop(buf, a.Region)
	if err != nil {
		return nil, err
	}
	c, err := imaging.Average(sub)
	if err != nil {
		return nil, err
	}
	b := sub.Bounds()
	return &AverageColorResult{
		ToneReport: newToneReport(imaging.RelativeLuminance(c)),
		Hex:        c.Hex(),
		RGB:        c,
		PixelCount: b.Dx() * b.Dy(),
	}, nil
}

type imageDominantColorsArgs struct {
	Path   string       `json:"path"`
	Count  int          `json:"count"`
	Region *pixelRegion `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	switch {
	case a.Count < 0:
		return nil, fmt.Errorf("count must be positive, got %d", a.Count)
	case a.Count == 0:
		a.Count = 5
	}
	buf, err := s.cache.LoadPixelBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	sub, err := crop(buf, a.Region)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(sub, a.Count)
}

type colorLuminanceArgs struct {
	Color string `json:"color"`
}

// ColorLuminanceResult is the outcome of color_luminance.
type ColorLuminanceResult struct {
	ToneReport
	Hex string        `json:"hex"`
	RGB imaging.Color `json:"rgb"`
}

func (s *Server) handleColorLuminance(args json.RawMessage) (interface{}, error) {
	var a colorLuminanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := imaging.ColorFromHex(a.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", a.Color, err)
	}
	return &ColorLuminanceResult{
		ToneReport: newToneReport(imaging.RelativeLuminance(c)),
		Hex:        c.Hex(),
		RGB:        c,
	}, nil
}
