// Package server implements the MCP (Model Context Protocol) server that
// exposes the pixel filter operations as tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout using newline-delimited
// messages, as expected by MCP clients. Supported methods:
//
//   - initialize: protocol handshake, reports server capabilities
//   - notifications/initialized: client acknowledgment (no response)
//   - tools/list: enumerates the available tools with their JSON schemas
//   - tools/call: executes a tool and returns its result
//   - ping: liveness check
//
// # Tools
//
// The tool surface covers loading and inspecting images
// (image_load, image_dimensions, image_sample_color,
// image_dominant_colors), the filters themselves (image_grayscale,
// image_edge_detect, image_convolve), and surrounding operations
// (image_crop, image_denoise). Filter results are returned as
// base64-encoded PNG inside the standard MCP content envelope.
//
// # Error Mapping
//
// Invalid request parameters produce JSON-RPC error -32602, unknown
// methods -32601, and tool execution failures -32000 with the underlying
// error message in the data field. Validation errors from the filter
// core (bad depth, missing options, unknown kernel names) surface as
// tool execution failures.
package server
