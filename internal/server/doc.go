// Package server implements the MCP (Model Context Protocol) server for text
// contrast tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line on stdin
// and one response per line on stdout. Supported MCP methods are initialize,
// tools/list, tools/call and ping.
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get intrinsic width and height
//
// Luminance Operations:
//   - image_text_luminance: Luminance under a front view laid out over an image view
//   - image_average_color: Average color of a pixel region
//   - image_dominant_colors: Most common colors of a pixel region
//   - color_luminance: Luminance of a single hex color
//
// Images are cached by path for the lifetime of the process.
//
// # Error Handling
//
// Tool failures, including "the front view and the back view do not have any
// overlap", are JSON-RPC errors with code -32000 and the Go error string as
// data.
package server
