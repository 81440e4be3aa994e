// Package imaging provides the pixel buffer that the annotator draws on,
// together with loading, circle drawing, and color sampling.
//
// A Buffer is a fixed-size 8-bit NRGBA raster. It is mutated in place and
// never resized. Every mutation bumps the buffer's generation so that a
// renderer can skip work when nothing changed since the last frame.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Buffers always start at the origin, so Bounds().Min is (0,0).
//
// # Channel Order
//
// Go's decoders hand back RGB-ordered samples, and Buffer stores them as
// R, G, B, A. Pure red is therefore color.NRGBA{255, 0, 0, 255}; see Red.
//
// # Thread Safety
//
// Buffer is not safe for concurrent use. The annotation loop owns it and
// both writes and renders it from a single goroutine.
//
// # Error Handling
//
// Load wraps every failure (missing file, unreadable file, unknown format,
// corrupt data, empty image) so that errors.Is(err, ErrLoadFailure) holds.
package imaging
