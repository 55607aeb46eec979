// Package pixel implements filters over flat 8-bit pixel buffers.
//
// The package operates on Buffer values: a flat []uint8 of interleaved
// samples plus width and height. Two channel depths are supported:
//   - 1: a single gray sample per pixel
//   - 4: interleaved R, G, B, A samples per pixel
//
// Three transformations are provided: Grayscale reduces an RGBA buffer
// using a selectable luminance formula, Convolve applies a square kernel
// per channel, and Edge runs a named edge-detection kernel (Laplacian by
// default), reducing RGBA input to grayscale first.
//
// # Purity
//
// Buffers are treated as immutable: every transformation allocates and
// returns a new Buffer and never writes to its input. There is no shared
// state apart from the kernel registry, which is lock-guarded, so all
// functions are safe for concurrent use on distinct or shared buffers.
//
// # Error Handling
//
// Invalid input fails fast before any work is done. The sentinel errors
// ErrShape, ErrDepth, ErrOption and ErrUnknownFilter classify the failure
// and are matchable with errors.Is; no partial results are ever returned.
package pixel
