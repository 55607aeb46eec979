// Package imaging bridges image files and the flat pixel buffers that
// the filter core operates on.
//
// It loads and caches PNG/JPEG/GIF files as pixel.Buffer values, encodes
// filter results back to base64 PNG for transport, and provides the
// supporting operations the MCP tools need around the filters: region
// cropping, Gaussian denoising, and color inspection.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner: X increases rightward, Y increases downward. For regions,
// (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. The remaining functions are
// stateless and never modify their input buffers, so they can be called
// concurrently as well.
//
// # Error Handling
//
// Functions return errors for coordinates outside buffer bounds, invalid
// region specifications, file I/O failures during loading, and encoding
// failures during output. Depth errors from the filter core propagate
// unchanged and can be matched with errors.Is against the pixel package
// sentinels.
package imaging
