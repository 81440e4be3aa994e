package imaging

import (
	"image"
	"image/color"
	"math"
)

// DrawCircle strokes a circle outline into buf.
//
// Parameters:
//   - buf: The buffer to paint. It is modified in place.
//   - center: Circle center in buffer coordinates. It may lie outside the
//     buffer; only the visible part of the ring is painted.
//   - radius: Distance from the center to the middle of the stroke.
//   - thickness: Stroke width in pixels. Values below 1 are treated as 1.
//   - c: Stroke color. It replaces the pixel values, no blending.
//
// A pixel is painted when the distance d from its center to the circle
// center satisfies radius - thickness/2 <= d < radius + thickness/2. Strokes
// that overlap earlier ones simply overwrite them, so the union of both
// rings ends up painted.
//
// Returns the number of pixels painted.
func DrawCircle(buf *Buffer, center image.Point, radius, thickness int, c color.NRGBA) int {
	if radius < 0 {
		return 0
	}
	if thickness < 1 {
		thickness = 1
	}

	half := float64(thickness) / 2
	inner := float64(radius) - half
	outer := float64(radius) + half
	if inner < 0 {
		inner = 0
	}

	reach := int(math.Ceil(outer))
	area := image.Rect(center.X-reach, center.Y-reach, center.X+reach+1, center.Y+reach+1).Intersect(buf.Bounds())

	innerSq := inner * inner
	outerSq := outer * outer
	painted := 0

	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := float64(y - center.Y)
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x - center.X)
			d := dx*dx + dy*dy
			if d < innerSq || d >= outerSq {
				continue
			}
			buf.pix.SetNRGBA(x, y, c)
			painted++
		}
	}

	if painted > 0 {
		buf.gen++
	}
	return painted
}
